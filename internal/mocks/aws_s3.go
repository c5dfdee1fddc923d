package mocks

import (
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

type AwsS3 struct {
	mock.Mock
}

func (m *AwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	args := m.Called(fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *AwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	args := m.Called(objectKey, file)
	return args.String(0), args.Error(1)
}

func (m *AwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *AwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *AwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}
