package minio

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"prana/internal/domain/entity"
	domain "prana/internal/domain/repository/minio"
)

const (
	minioImage    = "minio/minio:latest"
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	minioBucket   = "test-bucket"
)

var (
	pngBytes  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
	webpBytes = []byte{'R', 'I', 'F', 'F', 0x24, 0, 0, 0, 'W', 'E', 'B', 'P', 'V', 'P', '8', ' '}
)

func setupMinIO(t *testing.T) (*Client, string) {
	t.Helper()
	ctx := context.Background()

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        minioImage,
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = minioC.Terminate(ctx)
	})

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := New(ClientConfig{
		AccessKey: minioUser,
		SecretKey: minioPassword,
		Endpoint:  endpoint,
	})
	require.NoError(t, err)

	require.NoError(t, client.EnsureBucket(ctx, minioBucket))
	// A second call finds the bucket and does nothing.
	require.NoError(t, client.EnsureBucket(ctx, minioBucket))

	return client, endpoint
}

func TestUploadImage_Integration(t *testing.T) {
	client, endpoint := setupMinIO(t)

	uploader := NewUploader(client.MinioClient, UploaderConfig{
		Timeout:     10000,
		Bucket:      minioBucket,
		Folder:      "blogs",
		PublicURL:   "http://" + endpoint + "/",
		MaxFileSize: 64,
	})
	remover := NewRemover(client.MinioClient, RemoverConfig{Timeout: 5000})

	tests := []struct {
		name  string
		field string
		data  []byte
		mime  string
		ext   string
	}{
		{"png", entity.ImageField, pngBytes, "image/png", ".png"},
		{"jpeg", entity.AuthorImageField, jpegBytes, "image/jpeg", ".jpg"},
		{"webp", entity.ImageField, webpBytes, "image/webp", ".webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			result, err := uploader.UploadImage(ctx, bytes.NewReader(tt.data), int64(len(tt.data)), tt.field)
			require.NoError(t, err)

			assert.Equal(t, tt.field, result.Field)
			assert.Equal(t, minioBucket, result.Bucket)
			assert.Equal(t, tt.mime, result.Type)
			assert.Equal(t, int64(len(tt.data)), result.Size)
			assert.True(t, strings.HasPrefix(result.Object, "blogs/"+tt.field+"-"), result.Object)
			assert.True(t, strings.HasSuffix(result.Object, tt.ext), result.Object)
			assert.Equal(t, "http://"+endpoint+"/"+minioBucket+"/"+result.Object, result.Location)

			info, err := client.MinioClient.StatObject(ctx, minioBucket, result.Object, minio.StatObjectOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.mime, info.ContentType)

			require.NoError(t, remover.Remove(ctx, result.Bucket, result.Object))

			_, err = client.MinioClient.StatObject(ctx, minioBucket, result.Object, minio.StatObjectOptions{})
			assert.Error(t, err)
		})
	}
}

func TestUploadImageRejections_Integration(t *testing.T) {
	client, _ := setupMinIO(t)

	uploader := NewUploader(client.MinioClient, UploaderConfig{
		Timeout:     10000,
		Bucket:      minioBucket,
		Folder:      "blogs",
		MaxFileSize: 32,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := uploader.UploadImage(ctx, strings.NewReader("just some text"), 14, entity.ImageField)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType), err)

	_, err = uploader.UploadImage(ctx, bytes.NewReader(nil), 0, entity.ImageField)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType), err)

	big := append(append([]byte{}, pngBytes...), make([]byte, 64)...)

	_, err = uploader.UploadImage(ctx, bytes.NewReader(big), int64(len(big)), entity.ImageField)
	assert.True(t, errors.Is(err, domain.ErrTooLarge), err)

	// A stream whose declared size is unknown is still capped.
	_, err = uploader.UploadImage(ctx, bytes.NewReader(big), -1, entity.ImageField)
	assert.True(t, errors.Is(err, domain.ErrTooLarge), err)

	objects := client.MinioClient.ListObjects(ctx, minioBucket, minio.ListObjectsOptions{Recursive: true})
	for obj := range objects {
		t.Errorf("unexpected object %s", obj.Key)
	}
}
