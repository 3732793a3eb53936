package contentsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/errors/mark"
)

const (
	DefaultContentfulHost        = "https://cdn.contentful.com"
	DefaultContentfulEnvironment = "master"
	contentfulTimeout            = 10 * time.Second
)

var _ Source = ContentfulSource{}

type ContentfulSource struct {
	host        string
	spaceID     string
	accessToken string
	environment string
	client      *http.Client
}

func NewContentfulSource(contentfulConfig config.Contentful, client *http.Client) ContentfulSource {
	if client == nil {
		client = &http.Client{Timeout: contentfulTimeout}
	}

	host := contentfulConfig.Host
	if host == "" {
		host = DefaultContentfulHost
	}

	environment := contentfulConfig.Environment
	if environment == "" {
		environment = DefaultContentfulEnvironment
	}

	return ContentfulSource{
		host:        host,
		spaceID:     contentfulConfig.SpaceID,
		accessToken: contentfulConfig.AccessToken,
		environment: environment,
		client:      client,
	}
}

type contentfulLink struct {
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
	ID       string `json:"id"`
}

type contentfulItem struct {
	Sys struct {
		contententity.Sys
		ContentType struct {
			Sys contentfulLink `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type contentfulAsset struct {
	Sys    contentfulLink `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type contentfulCollection struct {
	Items    []contentfulItem `json:"items"`
	Includes struct {
		Asset []contentfulAsset `json:"Asset"`
	} `json:"includes"`
}

type contentfulError struct {
	Message string `json:"message"`
	Sys     struct {
		ID string `json:"id"`
	} `json:"sys"`
}

func (c ContentfulSource) GetEntries(ctx context.Context, query contententity.Query) ([]contententity.Entry, error) {
	endpoint := c.entriesURL(query)
	logger := log.WithField("content_type", query.ContentType)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to build contentful request")
	}
	request.Header.Set("Authorization", "Bearer "+c.accessToken)

	response, err := c.client.Do(request)
	if err != nil {
		return nil, mark.Wrap(err, UnavailableMark, "Failed to reach contentful")
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		apiErr := contentfulError{}
		_ = json.NewDecoder(response.Body).Decode(&apiErr)
		err := errors.Newf("Contentful responded %d %s: %s", response.StatusCode, apiErr.Sys.ID, apiErr.Message)
		return nil, mark.Wrap(err, BadResponseMark, "Contentful refused the entries query")
	}

	collection := contentfulCollection{}
	if err := json.NewDecoder(response.Body).Decode(&collection); err != nil {
		return nil, mark.Wrap(err, BadResponseMark, "Failed to decode contentful entries")
	}

	assets := map[string]map[string]any{}
	for _, asset := range collection.Includes.Asset {
		assets[asset.Sys.ID] = asset.Fields
	}

	entries := make([]contententity.Entry, 0, len(collection.Items))
	for _, item := range collection.Items {
		fields, _ := resolveLinks(item.Fields, assets).(map[string]any)
		if fields == nil {
			fields = map[string]any{}
		}

		contentType := contententity.ContentType(item.Sys.ContentType.Sys.ID)
		if contentType == "" {
			contentType = query.ContentType
		}

		entries = append(entries, contententity.Entry{
			Sys:         item.Sys.Sys,
			ContentType: contentType,
			Fields:      fields,
		})
	}

	logger.WithField("count", len(entries)).Debug("Fetched entries from contentful")
	return entries, nil
}

func (c ContentfulSource) entriesURL(query contententity.Query) string {
	params := url.Values{}
	params.Set("content_type", string(query.ContentType))

	for _, filter := range query.Filters {
		key := "fields." + filter.Field
		if filter.Op == contententity.GreaterThanOrEqual {
			key += "[gte]"
		}
		params.Set(key, filter.Value)
	}

	if query.Order != nil {
		order := "fields." + query.Order.Field
		if query.Order.Descending {
			order = "-" + order
		}
		params.Set("order", order)
	}

	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.host,
		url.PathEscape(c.spaceID),
		url.PathEscape(c.environment),
		params.Encode())
}

// resolveLinks swaps every asset link for the asset it points to, so callers
// see {fields: {file: {url}, title}} wherever the CMS stored a reference.
// Links to assets missing from the includes are left as they are
func resolveLinks(value any, assets map[string]map[string]any) any {
	switch v := value.(type) {
	case map[string]any:
		if link, ok := assetLink(v); ok {
			if fields, found := assets[link]; found {
				return map[string]any{"fields": fields}
			}
			return v
		}

		resolved := make(map[string]any, len(v))
		for key, inner := range v {
			resolved[key] = resolveLinks(inner, assets)
		}
		return resolved

	case []any:
		resolved := make([]any, len(v))
		for i, inner := range v {
			resolved[i] = resolveLinks(inner, assets)
		}
		return resolved

	default:
		return value
	}
}

func assetLink(m map[string]any) (string, bool) {
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return "", false
	}

	if sys["type"] != "Link" || sys["linkType"] != "Asset" {
		return "", false
	}

	id, ok := sys["id"].(string)
	return id, ok
}
