package invalidate

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/samber/do"
	"purgebot/internal/log"
)

// api is the slice of the CloudFront client this package calls.
type api interface {
	CreateInvalidation(context.Context, *cloudfront.CreateInvalidationInput, ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

type CloudFrontInvalidator struct {
	client api
}

func NewCloudFrontInvalidator(i *do.Injector) (Invalidator, error) {
	return &CloudFrontInvalidator{client: do.MustInvoke[*cloudfront.Client](i)}, nil
}

func (inv *CloudFrontInvalidator) Invalidate(ctx context.Context, req Request) (Result, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("invalidator").With(
		"distribution", req.Distribution,
		"paths", req.Paths,
	)
	log.Info("creating cloudfront invalidation")

	out, err := inv.client.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(req.Distribution),
		InvalidationBatch: &cftypes.InvalidationBatch{
			CallerReference: aws.String(req.Reference),
			Paths: &cftypes.Paths{
				Quantity: aws.Int32(int32(len(req.Paths))),
				Items:    req.Paths,
			},
		},
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Distribution: req.Distribution,
		Invalidation: aws.ToString(out.Invalidation.Id),
	}
	log.Info("created cloudfront invalidation", "invalidation", result.Invalidation)
	return result, nil
}
