package services

import (
	"context"
	"strings"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
)

// In-memory store implementations for service tests.

type fakeStudentStore struct {
	students []*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if s.StudentID != nil && student.StudentID != nil && *s.StudentID == *student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, s := range f.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, s := range f.students {
		if s.StudentID != nil && *s.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

type fakeLecturerStore struct {
	lecturers []*models.Lecturer
	nextID    int64
	calls     int
}

func newFakeLecturerStore() *fakeLecturerStore {
	return &fakeLecturerStore{nextID: 1}
}

func (f *fakeLecturerStore) Create(_ context.Context, lecturer *models.Lecturer) error {
	for _, l := range f.lecturers {
		if l.Email == lecturer.Email {
			return apperrors.ErrLecturerExists
		}
	}
	lecturer.ID = f.nextID
	f.nextID++
	f.lecturers = append(f.lecturers, lecturer)
	return nil
}

func (f *fakeLecturerStore) Update(_ context.Context, lecturer *models.Lecturer) error {
	for i, l := range f.lecturers {
		if l.ID == lecturer.ID {
			f.lecturers[i] = lecturer
			return nil
		}
	}
	return apperrors.ErrLecturerNotFound
}

func (f *fakeLecturerStore) Delete(_ context.Context, id int64) error {
	for i, l := range f.lecturers {
		if l.ID == id {
			f.lecturers = append(f.lecturers[:i], f.lecturers[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrLecturerNotFound
}

func (f *fakeLecturerStore) GetByID(_ context.Context, id int64) (*models.Lecturer, error) {
	for _, l := range f.lecturers {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, apperrors.ErrLecturerNotFound
}

func (f *fakeLecturerStore) GetByEmail(_ context.Context, email string) (*models.Lecturer, error) {
	for _, l := range f.lecturers {
		if l.Email == email {
			return l, nil
		}
	}
	return nil, apperrors.ErrLecturerNotFound
}

func (f *fakeLecturerStore) GetAll(_ context.Context) ([]*models.Lecturer, error) {
	return f.lecturers, nil
}

func (f *fakeLecturerStore) SearchByKeyword(_ context.Context, keyword string) ([]*models.Lecturer, error) {
	if keyword == "" {
		return f.lecturers, nil
	}
	var result []*models.Lecturer
	for _, l := range f.lecturers {
		if strings.Contains(l.FirstName, keyword) || strings.Contains(l.LastName, keyword) || strings.Contains(l.Department, keyword) {
			result = append(result, l)
			continue
		}
		for _, in := range l.Interests {
			if strings.Contains(in.Name, keyword) {
				result = append(result, l)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeLecturerStore) GetByInterestIDs(_ context.Context, interestIDs []int64) ([]*models.Lecturer, error) {
	wanted := make(map[int64]bool, len(interestIDs))
	for _, id := range interestIDs {
		wanted[id] = true
	}
	var result []*models.Lecturer
	for _, l := range f.lecturers {
		for _, in := range l.Interests {
			if wanted[in.ID] {
				result = append(result, l)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeLecturerStore) GetByCategoryID(_ context.Context, categoryID int64) ([]*models.Lecturer, error) {
	var result []*models.Lecturer
	for _, l := range f.lecturers {
		for _, in := range l.Interests {
			if in.CategoryID == categoryID {
				result = append(result, l)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeLecturerStore) GetByDepartment(_ context.Context, department string) ([]*models.Lecturer, error) {
	var result []*models.Lecturer
	for _, l := range f.lecturers {
		if strings.EqualFold(l.Department, department) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (f *fakeLecturerStore) GetByInterestNames(_ context.Context, names []string) ([]*models.Lecturer, error) {
	f.calls++
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var result []*models.Lecturer
	for _, l := range f.lecturers {
		for _, in := range l.Interests {
			if wanted[in.Name] {
				result = append(result, l)
				break
			}
		}
	}
	return result, nil
}

type fakeCategoryStore struct {
	categories []*models.ResearchCategory
	nextID     int64
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{nextID: 1}
}

func (f *fakeCategoryStore) Create(_ context.Context, category *models.ResearchCategory) error {
	for _, c := range f.categories {
		if c.Name == category.Name {
			return apperrors.ErrCategoryExists
		}
	}
	category.ID = f.nextID
	f.nextID++
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id int64) (*models.ResearchCategory, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

func (f *fakeCategoryStore) GetByName(_ context.Context, name string) (*models.ResearchCategory, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

func (f *fakeCategoryStore) GetAll(_ context.Context) ([]*models.ResearchCategory, error) {
	return f.categories, nil
}

type fakeInterestStore struct {
	interests []*models.ResearchInterest
	nextID    int64
}

func newFakeInterestStore() *fakeInterestStore {
	return &fakeInterestStore{nextID: 1}
}

func (f *fakeInterestStore) Create(_ context.Context, interest *models.ResearchInterest) error {
	for _, in := range f.interests {
		if in.Name == interest.Name && in.CategoryID == interest.CategoryID {
			return apperrors.ErrInterestExists
		}
	}
	interest.ID = f.nextID
	f.nextID++
	f.interests = append(f.interests, interest)
	return nil
}

func (f *fakeInterestStore) GetByID(_ context.Context, id int64) (*models.ResearchInterest, error) {
	for _, in := range f.interests {
		if in.ID == id {
			return in, nil
		}
	}
	return nil, apperrors.ErrInterestNotFound
}

func (f *fakeInterestStore) GetByName(_ context.Context, name string) (*models.ResearchInterest, error) {
	for _, in := range f.interests {
		if in.Name == name {
			return in, nil
		}
	}
	return nil, apperrors.ErrInterestNotFound
}

func (f *fakeInterestStore) GetAll(_ context.Context) ([]*models.ResearchInterest, error) {
	return f.interests, nil
}

func (f *fakeInterestStore) GetByCategoryID(_ context.Context, categoryID int64) ([]*models.ResearchInterest, error) {
	var result []*models.ResearchInterest
	for _, in := range f.interests {
		if in.CategoryID == categoryID {
			result = append(result, in)
		}
	}
	return result, nil
}

func (f *fakeInterestStore) SearchByKeyword(_ context.Context, keyword string) ([]*models.ResearchInterest, error) {
	if keyword == "" {
		return f.interests, nil
	}
	var result []*models.ResearchInterest
	for _, in := range f.interests {
		if strings.Contains(in.Name, keyword) || strings.Contains(in.Description, keyword) {
			result = append(result, in)
		}
	}
	return result, nil
}

// fakeHasher keeps test registrations deterministic and fast.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

