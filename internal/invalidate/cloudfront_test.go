package invalidate

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	in  *cloudfront.CreateInvalidationInput
	out *cloudfront.CreateInvalidationOutput
	err error
}

func (s *stubAPI) CreateInvalidation(_ context.Context, in *cloudfront.CreateInvalidationInput, _ ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	s.in = in
	return s.out, s.err
}

func TestInvalidate(t *testing.T) {
	stub := &stubAPI{out: &cloudfront.CreateInvalidationOutput{
		Invalidation: &cftypes.Invalidation{Id: aws.String("IABCDEF")},
	}}
	inv := &CloudFrontInvalidator{client: stub}

	result, err := inv.Invalidate(context.Background(), Request{
		Distribution: "E123",
		Paths:        []string{"/images/*", "/css/*"},
		Reference:    "ref-1",
	})
	require.NoError(t, err)

	require.NotNil(t, stub.in)
	assert.Equal(t, "E123", aws.ToString(stub.in.DistributionId))
	batch := stub.in.InvalidationBatch
	require.NotNil(t, batch)
	assert.Equal(t, "ref-1", aws.ToString(batch.CallerReference))
	assert.Equal(t, int32(2), aws.ToInt32(batch.Paths.Quantity))
	assert.Equal(t, []string{"/images/*", "/css/*"}, batch.Paths.Items)

	assert.Equal(t, Result{Distribution: "E123", Invalidation: "IABCDEF"}, result)
}

func TestInvalidateError(t *testing.T) {
	stub := &stubAPI{err: errors.New("throttled")}
	inv := &CloudFrontInvalidator{client: stub}

	_, err := inv.Invalidate(context.Background(), Request{Distribution: "E123", Paths: []string{"/*"}, Reference: "ref"})
	require.Error(t, err)
}
