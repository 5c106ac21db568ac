package inject

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/samber/do"
	"purgebot/internal/config"
	"purgebot/internal/dist"
	"purgebot/internal/handler"
	"purgebot/internal/invalidate"
	"purgebot/internal/log"
	"purgebot/internal/param"
)

func Setup(ctx context.Context) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Info(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*cloudfront.Client](injector, func(i *do.Injector) (*cloudfront.Client, error) {
		return cloudfront.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[dist.Lister](injector, dist.NewCloudFrontLister)
	do.Provide[invalidate.Invalidator](injector, invalidate.NewCloudFrontInvalidator)

	do.Provide[config.Config](injector, func(i *do.Injector) (config.Config, error) {
		return config.Load()
	})
	do.ProvideNamed[string](injector, "distribution_ids", func(i *do.Injector) (string, error) {
		cfg := do.MustInvoke[config.Config](i)
		if cfg.DistributionIDsParam == "" {
			return cfg.DistributionIDs, nil
		}
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.DistributionIDsParam)
	})
	do.ProvideNamed[string](injector, "object_paths", func(i *do.Injector) (string, error) {
		cfg := do.MustInvoke[config.Config](i)
		if cfg.ObjectPathsParam == "" {
			return cfg.ObjectPaths, nil
		}
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.ObjectPathsParam)
	})

	do.Provide[*handler.Handler](injector, handler.NewHandler)

	return injector
}
