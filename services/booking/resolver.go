package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"appointly/catalogue"
	"appointly/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// resolveServices fetches every requested service from the catalogue
// concurrently and validates the result set as a whole. All lookups must
// succeed: one unknown or inactive service aborts the entire resolution,
// and the group context cancels the outstanding siblings. On success the
// records come back sorted by name, independent of input or arrival order.
func (s *DefaultBookingService) resolveServices(ctx context.Context, ids []uuid.UUID) ([]models.CatalogueService, error) {
	if len(ids) == 0 {
		return nil, &LookupError{Message: "at least one service ID must be provided"}
	}

	results := make([]*models.CatalogueService, len(ids))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			svc, err := s.Catalogue.FetchService(groupCtx, id)
			if err != nil {
				var notFound *catalogue.NotFoundError
				if errors.As(err, &notFound) {
					return &LookupError{
						Message: fmt.Sprintf("service with ID %s not found in catalogue", notFound.ServiceID),
						Cause:   err,
					}
				}
				var unavailable *catalogue.UnavailableError
				if errors.As(err, &unavailable) {
					return &UnavailableError{Cause: err}
				}
				return &UnavailableError{Cause: err}
			}
			if !svc.Active {
				return &InactiveServiceError{ServiceID: svc.ID, Name: svc.Name}
			}
			results[i] = svc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Duplicate identifiers collapse to the same record; the resolved set
	// must match the requested count one-to-one.
	seen := make(map[uuid.UUID]struct{}, len(ids))
	resolved := make([]models.CatalogueService, 0, len(ids))
	for _, svc := range results {
		if svc == nil {
			return nil, &LookupError{Message: "could not retrieve details for all requested services"}
		}
		if _, dup := seen[svc.ID]; dup {
			return nil, &LookupError{Message: "could not retrieve details for all requested services"}
		}
		seen[svc.ID] = struct{}{}
		resolved = append(resolved, *svc)
	}
	if len(resolved) != len(ids) {
		return nil, &LookupError{Message: "could not retrieve details for all requested services"}
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Name < resolved[j].Name
	})
	return resolved, nil
}
