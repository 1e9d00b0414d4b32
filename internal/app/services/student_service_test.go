package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
)

func newStudentServiceForTest() (StudentService, *fakeStudentStore) {
	store := newFakeStudentStore()
	return NewStudentService(store, fakeHasher{}), store
}

func validRegistration() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@student.edu",
		StudentID: "20240001",
		Program:   "Computer Science",
		Password:  "secret-password",
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	svc, store := newStudentServiceForTest()

	student, err := svc.RegisterStudent(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, int64(1), student.ID)
	assert.Equal(t, "Jane Doe", student.FullName())
	require.NotNil(t, student.StudentID)
	assert.Equal(t, "20240001", *student.StudentID)
	assert.NotEqual(t, "secret-password", student.Password)
	assert.Len(t, store.students, 1)
}

func TestRegisterStudent_InvalidEmails(t *testing.T) {
	cases := []struct {
		name  string
		email string
	}{
		{"blank", ""},
		{"whitespace only", "   "},
		{"missing at sign", "jane.doe.student.edu"},
		{"at sign first", "@student.edu"},
		{"at sign last", "jane.doe@"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newStudentServiceForTest()
			req := validRegistration()
			req.Email = tc.email

			_, err := svc.RegisterStudent(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Empty(t, store.students, "nothing should be persisted")
		})
	}
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	svc, store := newStudentServiceForTest()

	_, err := svc.RegisterStudent(context.Background(), validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.StudentID = "20240002"
	_, err = svc.RegisterStudent(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Len(t, store.students, 1)
}

func TestRegisterStudent_DuplicateStudentID(t *testing.T) {
	svc, store := newStudentServiceForTest()

	_, err := svc.RegisterStudent(context.Background(), validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "john.doe@student.edu"
	_, err = svc.RegisterStudent(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
	assert.Len(t, store.students, 1)
}

func TestRegisterStudent_OptionalStudentID(t *testing.T) {
	svc, _ := newStudentServiceForTest()

	req := validRegistration()
	req.StudentID = ""
	student, err := svc.RegisterStudent(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, student.StudentID)

	// a second registration without a student identifier must not collide
	second := validRegistration()
	second.Email = "other@student.edu"
	second.StudentID = ""
	_, err = svc.RegisterStudent(context.Background(), second)
	assert.NoError(t, err)
}

func TestExistsByEmail(t *testing.T) {
	svc, _ := newStudentServiceForTest()

	_, err := svc.RegisterStudent(context.Background(), validRegistration())
	require.NoError(t, err)

	exists, err := svc.ExistsByEmail(context.Background(), "jane.doe@student.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByEmail(context.Background(), "unknown@student.edu")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindByEmail_NotFound(t *testing.T) {
	svc, _ := newStudentServiceForTest()

	_, err := svc.FindByEmail(context.Background(), "unknown@student.edu")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
