package dist

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/samber/do"
	"github.com/samber/lo"
	"purgebot/internal/log"
)

type CloudFrontLister struct {
	client cloudfront.ListDistributionsAPIClient
}

func NewCloudFrontLister(i *do.Injector) (Lister, error) {
	return &CloudFrontLister{client: do.MustInvoke[*cloudfront.Client](i)}, nil
}

func (l *CloudFrontLister) List(ctx context.Context) ([]Distribution, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("lister")
	log.Info("listing cloudfront distributions")

	var distributions []Distribution
	pager := cloudfront.NewListDistributionsPaginator(l.client, &cloudfront.ListDistributionsInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if page.DistributionList == nil {
			continue
		}
		distributions = append(distributions, lo.Map(page.DistributionList.Items,
			func(d cftypes.DistributionSummary, _ int) Distribution {
				var aliases []string
				if d.Aliases != nil {
					aliases = d.Aliases.Items
				}
				return Distribution{
					ID:         aws.ToString(d.Id),
					DomainName: aws.ToString(d.DomainName),
					Aliases:    aliases,
				}
			})...)
	}

	log.Info("listed cloudfront distributions", "count", len(distributions))
	return distributions, nil
}
