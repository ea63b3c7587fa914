package service

import (
	"context"
	"errors"
	"fmt"

	"vitibrasil/scraper/internal/client"
	"vitibrasil/scraper/internal/domain"
	"vitibrasil/scraper/internal/query"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	catalog *domain.Catalog
	client  client.VitibrasilClient
	baseURL string
}

func NewService(catalog *domain.Catalog, client client.VitibrasilClient, baseURL string) *Service {
	return &Service{
		catalog: catalog,
		client:  client,
		baseURL: baseURL,
	}
}

// Result is the outcome of a table request: exactly one of Table or
// Error is set, and HTTPStatus carries the matching status code.
type Result struct {
	HTTPStatus int
	Table      *domain.TableResponse
	Error      *domain.ErrorResponse
}

// GetTableData validates the request, builds the upstream URL and
// fetches the data table. Validation failures map to 400 and never
// touch the network; upstream or extraction failures map to 500.
func (s *Service) GetTableData(ctx context.Context, p query.Params) Result {
	q, err := query.Validate(s.catalog, p)
	if err != nil {
		var verr *query.ValidationError
		if errors.As(err, &verr) {
			log.Infof("Rejected request (%s): %s", verr.Field, verr.Message)
			return Result{
				HTTPStatus: 400,
				Error:      domain.NewErrorResponse(verr.Message),
			}
		}

		log.Errorf("❌ Failed to validate request: %v", err)
		return Result{
			HTTPStatus: 400,
			Error:      domain.NewErrorResponse(err.Error()),
		}
	}

	url := query.BuildURL(s.baseURL, q)
	log.Infof("🔄 Fetching table data from %s", url)

	rows, err := s.client.FetchTable(ctx, url)
	if err != nil {
		log.Errorf("❌ Failed to fetch table data from %s: %v", url, err)
		return Result{
			HTTPStatus: 500,
			Error:      domain.NewErrorResponse(fmt.Sprintf("failed to process URL %s: %v", url, err)),
		}
	}

	log.Infof("✅ Fetched %d rows from %s", len(rows), url)
	return Result{
		HTTPStatus: 200,
		Table:      domain.NewTableResponse(rows, url),
	}
}

// Categories lists the queryable categories in presentation order.
func (s *Service) Categories() *domain.CategoryListing {
	return &domain.CategoryListing{Categories: s.catalog.Categories()}
}
