package snapshots

import (
	"encoding/base64"
	"fmt"
	"net/url"
)

const ShareParam = "share"

// ShareURL embeds the snapshot in base as the share query parameter.
func ShareURL(base string, s Snapshot) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base %q: %w", base, err)
	}
	data, err := Marshal(s)
	if err != nil {
		return "", err
	}
	query := u.Query()
	query.Set(ShareParam, base64.StdEncoding.EncodeToString(data))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// FromShareURL reads a snapshot from the share query parameter of raw.
// It reports false when raw carries no share parameter.
func FromShareURL(raw string) (Snapshot, bool, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("parse share url: %w", err)
	}
	param := u.Query().Get(ShareParam)
	if param == "" {
		return Snapshot{}, false, nil
	}
	data, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("decode share param: %w", err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return Snapshot{}, false, err
	}
	return s, true, nil
}
