package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"chebi-leaves/internal/ports"
	"chebi-leaves/internal/shared"
	"chebi-leaves/internal/types"
)

const DefaultChEBIEndpoint = "https://www.ebi.ac.uk/webservices/chebi/2.0/test/"

const (
	chebiChildrenPath       = "getOntologyChildren"
	chebiCompleteEntityPath = "getCompleteEntity"
	defaultChEBITimeout     = 60 * time.Second
	maxChEBIResponseBytes   = 32 << 20
)

type ChEBIClientAdapter struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewChEBIClientAdapter(endpoint string, timeoutSec int) ChEBIClientAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultChEBIEndpoint
	}
	return ChEBIClientAdapter{
		Endpoint: endpoint,
		Timeout:  normalizeChEBITimeout(timeoutSec),
	}
}

func (a ChEBIClientAdapter) FetchChildren(ctx context.Context, id string) (types.Children, error) {
	requestURL := a.lookupURL(chebiChildrenPath, id)
	body, err := a.get(ctx, requestURL)
	if err != nil {
		return types.Children{}, err
	}
	elements, err := decodeListElements(body)
	if err != nil {
		return types.Children{}, &types.MalformedResponseError{URL: requestURL, Err: err}
	}

	children := types.Children{}
	for _, element := range elements {
		name := textValue(element.Name)
		childID := textValue(element.ID)
		rawType := textValue(element.Type)
		if element.Name == nil || element.Type == nil || childID == "" {
			log.Warn().
				Str("parent", id).
				Str("chebi_id", childID).
				Str("name", name).
				Msg("skipping incomplete ontology child")
			children.Dropped = append(children.Dropped, types.DroppedEntity{
				ParentID:    id,
				ID:          childID,
				Name:        name,
				RawRelation: rawType,
				Reason:      types.DropReasonIncomplete,
			})
			continue
		}
		canonical, err := shared.NormalizeChEBIID(childID)
		if err != nil {
			log.Warn().
				Str("parent", id).
				Str("chebi_id", childID).
				Msg("skipping ontology child with invalid id")
			children.Dropped = append(children.Dropped, types.DroppedEntity{
				ParentID:    id,
				ID:          childID,
				Name:        name,
				RawRelation: rawType,
				Reason:      types.DropReasonInvalidID,
			})
			continue
		}
		relation, ok := types.ParseRelationKind(rawType)
		if !ok {
			log.Debug().
				Str("parent", id).
				Str("chebi_id", canonical).
				Str("type", rawType).
				Msg("filtering ontology child by relation")
			children.Dropped = append(children.Dropped, types.DroppedEntity{
				ParentID:    id,
				ID:          canonical,
				Name:        name,
				RawRelation: rawType,
				Reason:      types.DropReasonRelation,
			})
			continue
		}
		children.Entities = append(children.Entities, types.OntologyEntity{
			Name:     name,
			ID:       canonical,
			Relation: relation,
		})
	}
	return children, nil
}

func (a ChEBIClientAdapter) FetchStructure(ctx context.Context, id string) (string, bool, error) {
	entity, err := a.fetchCompleteEntity(ctx, id)
	if err != nil {
		return "", false, err
	}
	return entity.smiles, entity.hasSmiles, nil
}

// FetchEntity describes id itself from the complete-entity lookup. Relation
// stays unknown because no parent edge is involved.
func (a ChEBIClientAdapter) FetchEntity(ctx context.Context, id string) (types.OntologyEntity, error) {
	entity, err := a.fetchCompleteEntity(ctx, id)
	if err != nil {
		return types.OntologyEntity{}, err
	}
	result := types.OntologyEntity{
		Name: entity.asciiName,
		ID:   id,
	}
	if entity.hasSmiles {
		result = result.WithStructure(entity.smiles)
	}
	return result, nil
}

func (a ChEBIClientAdapter) ResolveStructureFor(ctx context.Context, entity types.OntologyEntity) (types.OntologyEntity, error) {
	smiles, ok, err := a.FetchStructure(ctx, entity.ID)
	if err != nil {
		return types.OntologyEntity{}, err
	}
	if !ok {
		return entity, nil
	}
	return entity.WithStructure(smiles), nil
}

func (a ChEBIClientAdapter) fetchCompleteEntity(ctx context.Context, id string) (completeEntity, error) {
	requestURL := a.lookupURL(chebiCompleteEntityPath, id)
	body, err := a.get(ctx, requestURL)
	if err != nil {
		return completeEntity{}, err
	}
	entity, err := decodeCompleteEntity(body)
	if err != nil {
		return completeEntity{}, &types.MalformedResponseError{URL: requestURL, Err: err}
	}
	return entity, nil
}

func (a ChEBIClientAdapter) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &types.RemoteServiceError{URL: requestURL, Err: err}
	}
	req.Header.Set("Accept", "application/xml, text/xml")
	log.Debug().Str("url", requestURL).Msg("chebi request")
	resp, err := a.client().Do(req)
	if err != nil {
		return nil, &types.RemoteServiceError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChEBIResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug().
			Int("status", resp.StatusCode).
			Str("url", requestURL).
			Str("response", shared.TrimBody(body, 200)).
			Msg("chebi request failed")
		return nil, &types.RemoteServiceError{Status: resp.StatusCode, URL: requestURL}
	}
	if err != nil {
		return nil, &types.RemoteServiceError{Status: resp.StatusCode, URL: requestURL, Err: err}
	}
	return body, nil
}

func (a ChEBIClientAdapter) client() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return &http.Client{Timeout: normalizeChEBITimeoutDuration(a.Timeout)}
}

func (a ChEBIClientAdapter) lookupURL(path string, id string) string {
	endpoint := strings.TrimSpace(a.Endpoint)
	if endpoint == "" {
		endpoint = DefaultChEBIEndpoint
	}
	query := url.Values{}
	query.Set("chebiId", id)
	return fmt.Sprintf("%s/%s?%s", strings.TrimRight(endpoint, "/"), path, query.Encode())
}

func normalizeChEBITimeout(value int) time.Duration {
	return normalizeChEBITimeoutDuration(time.Duration(value) * time.Second)
}

func normalizeChEBITimeoutDuration(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultChEBITimeout
	}
	return timeout
}

var _ ports.OntologyPort = ChEBIClientAdapter{}
