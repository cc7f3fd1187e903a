package s3

import (
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnolrouter/internal/domain"
)

func TestParseURI(t *testing.T) {
	bucket, key, err := ParseURI("s3://claims-inbox/2024/05/fnol_theft.pdf")
	require.NoError(t, err)
	assert.Equal(t, "claims-inbox", bucket)
	assert.Equal(t, "2024/05/fnol_theft.pdf", key)

	for _, bad := range []string{
		"claims-inbox/fnol.pdf",
		"s3://",
		"s3://claims-inbox",
		"s3://claims-inbox/",
		"s3:///fnol.pdf",
		"s3://claims-inbox/folder/",
	} {
		t.Run(bad, func(t *testing.T) {
			_, _, err := ParseURI(bad)
			assert.ErrorIs(t, err, domain.ErrInvalidSource)
		})
	}
}

func TestIsURI(t *testing.T) {
	assert.True(t, IsURI("s3://b/k.txt"))
	assert.False(t, IsURI("/tmp/k.txt"))
}

func TestMapError(t *testing.T) {
	for _, code := range []string{"NoSuchKey", "NotFound", "NoSuchBucket"} {
		err := mapError(&smithy.GenericAPIError{Code: code, Message: "gone"})
		assert.ErrorIs(t, err, domain.ErrFileNotFound, code)
	}

	denied := &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"}
	assert.Equal(t, error(denied), mapError(denied))

	plain := errors.New("timeout")
	assert.Equal(t, plain, mapError(plain))
}
