package storage

import (
	"WebFood-API/domain"
	"WebFood-API/internal/utils"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	// S3API is the subset of *s3.Client used here.
	S3API interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client S3API
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		logrus.WithError(err).Warn("failed to load aws config")
	}

	return NewAwsS3WithClient(s3.NewFromConfig(cfg), utils.GetConfig("AWS_S3_BUCKET"), region)
}

func NewAwsS3WithClient(client S3API, bucket, region string) AwsS3 {
	return &awsS3{
		client: client,
		bucket: bucket,
		region: region,
	}
}

func checkExtension(name string, allowedExt []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if len(allowedExt) == 0 {
		return ext, nil
	}
	for _, allowed := range allowedExt {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", domain.ErrInvalidImageFormat
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader, ext string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	contentType := contentTypes[ext]
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	return err
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext, err := checkExtension(file.Filename, allowedExt)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s-%s%s", folder, fileName, uuid.NewString(), ext)
	if err := a.put(objectKey, file, ext); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	ext, err := checkExtension(file.Filename, allowedExt)
	if err != nil {
		return "", err
	}

	// keep the folder and base name, swap the extension if the new file differs
	newKey := strings.TrimSuffix(objectKey, filepath.Ext(objectKey)) + ext
	if err := a.put(newKey, file, ext); err != nil {
		return "", err
	}
	if newKey != objectKey {
		if err := a.DeleteFile(objectKey); err != nil {
			logrus.WithError(err).WithField("key", objectKey).Warn("failed to delete replaced object")
		}
	}
	return newKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return a.baseURL() + objectKey
}

// GetObjectKeyFromLink returns "" for links outside the configured bucket.
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, a.baseURL()) {
		return ""
	}
	return strings.TrimPrefix(link, a.baseURL())
}
