package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

// apiPath is the versioned API prefix appended to the configured base URL.
const apiPath = "/api/v1"

type elnAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewELNAdapter builds the resty-based [ELNAdapter] for the configured RSpace
// instance. The api key is installed as a default header on the underlying
// client and never appears in log output.
func NewELNAdapter(cfg config.Client, log *logger.Logger) (ELNAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: empty base url", config.ErrInvalidClientConfigs)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + apiPath).
		SetTimeout(timeout).
		SetHeader("apiKey", cfg.APIKey)

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	log.Debug().
		Str("baseURL", cfg.BaseURL).
		Str("apiKey", config.MaskKey(cfg.APIKey)).
		Msg("eln adapter ready")

	return &elnAdapter{client: cli, log: log}, nil
}

func (h *elnAdapter) Status(ctx context.Context) (models.Status, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/status")
	if err != nil {
		return models.Status{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}

	var st models.Status
	if err = json.Unmarshal(resp.Body(), &st); err != nil {
		return models.Status{}, fmt.Errorf("decode status response: %w", err)
	}
	return st, nil
}

func (h *elnAdapter) Folder(ctx context.Context, folderID int64) (models.Folder, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/folders/" + strconv.FormatInt(folderID, 10))
	if err != nil {
		return models.Folder{}, fmt.Errorf("get folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}

	var folder models.Folder
	if err = json.Unmarshal(resp.Body(), &folder); err != nil {
		return models.Folder{}, fmt.Errorf("decode folder response: %w", err)
	}
	return folder, nil
}

func (h *elnAdapter) Document(ctx context.Context, documentID int64) (models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/documents/" + strconv.FormatInt(documentID, 10))
	if err != nil {
		return models.Document{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document response: %w", err)
	}
	return doc, nil
}

func (h *elnAdapter) DocumentCSV(ctx context.Context, documentID int64) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get("/documents/" + strconv.FormatInt(documentID, 10))
	if err != nil {
		return "", fmt.Errorf("get document csv request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *elnAdapter) SearchDocuments(ctx context.Context, query models.SearchQuery, page, pageSize int) (models.DocumentList, error) {
	wire, err := query.Wire()
	if err != nil {
		return models.DocumentList{}, fmt.Errorf("encode advanced query: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"advancedQuery": wire,
			"pageNumber":    strconv.Itoa(page),
			"pageSize":      strconv.Itoa(pageSize),
			"orderBy":       "created asc",
		}).
		Get("/documents")
	if err != nil {
		return models.DocumentList{}, fmt.Errorf("search documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentList{}, err
	}

	var list models.DocumentList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.DocumentList{}, fmt.Errorf("decode search response: %w", err)
	}

	h.log.Debug().
		Int("page", page).
		Int64("totalHits", list.TotalHits).
		Int("documents", len(list.Documents)).
		Msg("searched documents")

	return list, nil
}

func (h *elnAdapter) CreateDocument(ctx context.Context, doc models.NewDocument) (models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var created models.Document
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Document{}, fmt.Errorf("decode created document: %w", err)
	}

	h.log.Debug().Str("globalId", created.GlobalID).Msg("created document")
	return created, nil
}

func (h *elnAdapter) UploadFile(ctx context.Context, name string, r io.Reader) (models.FileInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", name, r).
		Post("/files")
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileInfo{}, err
	}

	var info models.FileInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.FileInfo{}, fmt.Errorf("decode uploaded file response: %w", err)
	}

	h.log.Debug().Str("globalId", info.GlobalID).Int64("size", info.Size).Msg("uploaded file")
	return info, nil
}

func (h *elnAdapter) DownloadFile(ctx context.Context, fileID int64, w io.Writer) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/files/" + strconv.FormatInt(fileID, 10) + "/file")
	if err != nil {
		return fmt.Errorf("download file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("write downloaded file: %w", err)
	}
	return nil
}
