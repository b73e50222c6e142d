package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-rx-api/models"
)

//go:embed fixtures/users.json
var builtinUsers []byte

// LoadUsers reads the users from path, or the built-in fixtures when path is
// empty.
func LoadUsers(path string) ([]models.User, error) {
	if path == "" {
		return decodeUsers(bytes.NewReader(builtinUsers))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return decodeUsers(f)
}

func decodeUsers(r io.Reader) ([]models.User, error) {
	var users []models.User
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return users, nil
}
