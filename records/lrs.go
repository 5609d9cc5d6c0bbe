package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/turingconfigs"
)

const xAPIVersion = "1.0.3"

// LRSStore saves snapshots as xAPI activity state documents.
type LRSStore struct {
	Client   *http.Client
	Settings turingconfigs.LRSSettings
}

var _ Store = new(LRSStore)

type lrsDocument struct {
	AppState json.RawMessage `json:"appState,omitempty"`
}

type lrsAgent struct {
	ObjectType string `json:"objectType"`
	Name       string `json:"name,omitempty"`
	Mbox       string `json:"mbox,omitempty"`
}

func (l *LRSStore) stateURL(key string) (string, error) {
	endpoint := l.Settings.Endpoint
	if endpoint == "" {
		return "", fmt.Errorf("lrs endpoint not configured")
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	u, err := url.Parse(endpoint + "activities/state")
	if err != nil {
		return "", err
	}
	agent, err := json.Marshal(lrsAgent{
		ObjectType: "Agent",
		Name:       l.Settings.Agent.Name,
		Mbox:       l.Settings.Agent.Mbox,
	})
	if err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("activityId", l.Settings.ActivityID)
	query.Set("agent", string(agent))
	query.Set("stateId", key)
	if l.Settings.Registration != "" {
		query.Set("registration", l.Settings.Registration)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (l *LRSStore) do(ctx context.Context, method string, key string, body []byte) (*http.Response, error) {
	stateURL, err := l.stateURL(key)
	if err != nil {
		return nil, err
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, stateURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Experience-API-Version", xAPIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if l.Settings.Auth != "" {
		req.Header.Set("Authorization", l.Settings.Auth)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}

func (l *LRSStore) Save(ctx context.Context, key string, s snapshots.Snapshot) (err error) {
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, fmt.Errorf("%w: save %s: %w", ErrStore, key, err))
		}
	}()

	state, err := snapshots.Marshal(s)
	if err != nil {
		return err
	}
	body, err := json.Marshal(lrsDocument{
		AppState: state,
	})
	if err != nil {
		return err
	}
	resp, err := l.do(ctx, http.MethodPut, key, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(resp)
	}
	return nil
}

func (l *LRSStore) Load(ctx context.Context, key string) (ret snapshots.Snapshot, ok bool, err error) {
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, fmt.Errorf("%w: load %s: %w", ErrStore, key, err))
		}
	}()

	resp, err := l.do(ctx, http.MethodGet, key, nil)
	if err != nil {
		return ret, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ret, false, nil
	}
	if resp.StatusCode/100 != 2 {
		return ret, false, statusError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ret, false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ret, false, nil
	}
	var doc lrsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ret, false, fmt.Errorf("decode state document: %w", err)
	}
	if len(doc.AppState) == 0 || string(doc.AppState) == "null" {
		return ret, false, nil
	}
	ret, err = snapshots.Unmarshal(doc.AppState)
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

func (l *LRSStore) Close() error {
	return nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("lrs responded %s: %s", resp.Status, bytes.TrimSpace(msg))
}
