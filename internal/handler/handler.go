package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/samber/lo"
	"purgebot/internal/dist"
	"purgebot/internal/invalidate"
	"purgebot/internal/log"
	"purgebot/internal/target"
)

// Response is what the scheduler sees after an invocation: a status marker
// and the JSON-encoded list of distribution ids that were processed.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type Handler struct {
	lister        dist.Lister
	invalidator   invalidate.Invalidator
	distributions string
	paths         string
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		lister:        do.MustInvoke[dist.Lister](i),
		invalidator:   do.MustInvoke[invalidate.Invalidator](i),
		distributions: do.MustInvokeNamed[string](i, "distribution_ids"),
		paths:         do.MustInvokeNamed[string](i, "object_paths"),
	}, nil
}

// Handle resolves the configured distribution selector and issues one
// invalidation request per distribution, sequentially and in the order the
// ids were obtained. A failed request does not stop the remaining ones; the
// collected failures are returned after the loop so the scheduler still sees
// the invocation as failed.
func (h *Handler) Handle(ctx context.Context) (Response, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler").With(
		"distributions", h.distributions,
		"paths", h.paths,
	)
	log.Info("handling scheduled invocation")

	paths := target.ParsePaths(h.paths)
	ids, all := target.ParseDistributions(h.distributions)
	if all {
		listed, err := h.lister.List(ctx)
		if err != nil {
			return Response{}, err
		}
		ids = lo.Map(listed, func(d dist.Distribution, _ int) string { return d.ID })
	}

	processed := make([]string, 0, len(ids))
	var errs []error
	for _, id := range ids {
		result, err := h.invalidator.Invalidate(ctx, invalidate.Request{
			Distribution: id,
			Paths:        paths,
			Reference:    uuid.NewString(),
		})
		if err != nil {
			log.Error("invalidation failed", "distribution", id, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		processed = append(processed, result.Distribution)
	}
	if err := errors.Join(errs...); err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(processed)
	if err != nil {
		return Response{}, err
	}
	log.Info("handled scheduled invocation", "processed", processed)
	return Response{StatusCode: 200, Body: string(body)}, nil
}
