// Package api is a typed client for the catalog REST API. Non-2xx responses
// are turned into the sentinel errors of package common so callers can use
// errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/netx"
)

// ErrUnavailable reports that the server could not be reached.
var ErrUnavailable = errors.New("server unavailable")

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token sent with authenticated requests. An empty
// token logs out.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *Client) Me(ctx context.Context) (*Me, error) {
	var out Me
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAnimals(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0)
	if err := c.do(ctx, http.MethodGet, "/animals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAnimal(ctx context.Context, id int64) (*Animal, error) {
	var out Animal
	if err := c.do(ctx, http.MethodGet, "/animals/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAnimal(ctx context.Context, a NewAnimal) (*Animal, error) {
	var out Animal
	if err := c.do(ctx, http.MethodPost, "/animals", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/animals/"+strconv.FormatInt(id, 10), nil, nil)
}

// UploadImage asks the server for a presigned slot, PUTs the file there and
// returns the public image URL.
func (c *Client) UploadImage(ctx context.Context, path, contentType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var slot ImageUpload
	if err := c.do(ctx, http.MethodPost, "/animals/images", map[string]string{"content_type": contentType}, &slot); err != nil {
		return "", err
	}

	if err := netx.UploadToPresignedURL(ctx, c.http, slot.UploadURL, contentType, data); err != nil {
		return "", err
	}

	return slot.ImageURL, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = common.ErrorInvalidInput
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusConflict:
		sentinel = common.ErrorConflict
	case http.StatusServiceUnavailable:
		sentinel = common.ErrorUnavailable
	default:
		sentinel = common.ErrorInternal
	}

	if e.Error == "" || e.Error == sentinel.Error() {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, strings.TrimPrefix(e.Error, sentinel.Error()+": "))
}
