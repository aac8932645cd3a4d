package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

const uploadEndpoint = "https://api.cloudinary.com/v1_1/%s/auto/upload"

// Client uploads files to Cloudinary using signed uploads.
type Client struct {
	httpClient *http.Client
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
}

func NewClient(cfg config.CloudinaryConfig, logg *logger.Logger) (*Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("cloudinary cloud name, key, and secret are required")
	}

	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		folder:     cfg.Folder,
	}

	if logg != nil {
		logg.Info(context.Background(), "cloudinary client initialized")
	}
	return client, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file to Cloudinary and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"timestamp": timestamp,
	}
	if c.folder != "" {
		params["folder"] = c.folder
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copying upload body: %w", err)
	}

	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return "", fmt.Errorf("writing form field %s: %w", key, err)
		}
	}
	if err := writer.WriteField("api_key", c.apiKey); err != nil {
		return "", fmt.Errorf("writing api key: %w", err)
	}
	if err := writer.WriteField("signature", c.sign(params)); err != nil {
		return "", fmt.Errorf("writing signature: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing upload form: %w", err)
	}

	url := fmt.Sprintf(uploadEndpoint, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading to cloudinary: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding cloudinary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("cloudinary upload failed: %s", msg)
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", errors.New("cloudinary response missing url")
}

// sign builds the Cloudinary request signature: the SHA1 hex digest of the
// sorted parameter string concatenated with the API secret.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(digest[:])
}
