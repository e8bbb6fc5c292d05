package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

const registryName = "pypi"

// packageResponse is the subset of the PyPI JSON metadata endpoint this
// engine consumes: the release-version map and the hidden flag under the
// "info" section.
type packageResponse struct {
	Info struct {
		Name   string `json:"name"`
		Hidden bool   `json:"_pypi_hidden"`
	} `json:"info"`
	Releases map[string]json.RawMessage `json:"releases"`
}

// PyPIRegistryRepository implements repositories.RegistryRepository against
// a PyPI-compatible JSON metadata endpoint.
type PyPIRegistryRepository struct {
	baseURL string
	client  *http.Client
}

// NewRegistryRepository creates a PyPI client for the given base URL with a
// bounded per-request timeout.
func NewRegistryRepository(baseURL string, timeout time.Duration) repositories.RegistryRepository {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &PyPIRegistryRepository{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (r *PyPIRegistryRepository) Name() string { return registryName }

// FetchPackageInfo issues one GET against {base}/pypi/{name}/json and maps
// the response. Any transport or non-200 failure is returned as a
// *entities.RegistryFetchError; nothing is retried.
func (r *PyPIRegistryRepository) FetchPackageInfo(
	ctx context.Context,
	name string,
) (*entities.RegistryInfo, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", r.baseURL, name)
	logger.Debugf("[pypi] GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entities.RegistryFetchError{Package: name, Err: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &entities.RegistryFetchError{Package: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &entities.RegistryFetchError{Package: name, StatusCode: resp.StatusCode}
	}

	var payload packageResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &entities.RegistryFetchError{Package: name, Err: decodeErr}
	}

	versions := make([]string, 0, len(payload.Releases))
	for version := range payload.Releases {
		versions = append(versions, version)
	}

	return &entities.RegistryInfo{
		Name:     name,
		Versions: versions,
		Hidden:   payload.Info.Hidden,
	}, nil
}
