package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:3000",
		"-request-timeout", "15s",
		"-H", "Authorization: Bearer a:b",
		"-H", "X-Client:rx",
		"-users", "3,1",
		"-users", "7",
		"-i",
		"-log-level", "warn",
		"-refresh", "2m",
		"-t", "tok",
		"-listen", "127.0.0.1:9000",
		"-server-timeout", "3s",
		"-server-token", "srv",
		"-fixtures", "users.json",
		"-config", "/tmp/c.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, map[string]string{"Authorization": "Bearer a:b", "X-Client": "rx"}, cfg.Adapter.Headers)
	assert.Equal(t, []int64{3, 1, 7}, cfg.App.UserIDs)
	assert.True(t, cfg.App.Interactive)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
	assert.Equal(t, "tok", cfg.Adapter.Token)
	assert.Equal(t, Server{
		HTTPAddress:    "127.0.0.1:9000",
		RequestTimeout: 3 * time.Second,
		Token:          "srv",
		FixturesPath:   "users.json",
	}, cfg.Server)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Nil(t, cfg.Adapter.Headers)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "a.json"})

	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-x"}},
		{name: "bad duration", args: []string{"-request-timeout", "abc"}},
		{name: "header without colon", args: []string{"-H", "Authorization"}},
		{name: "header without name", args: []string{"-H", ": v"}},
		{name: "non numeric id", args: []string{"-users", "1,a"}},
		{name: "zero id", args: []string{"-users", "0"}},
		{name: "address without port", args: []string{"-listen", "localhost"}},
		{name: "port out of range", args: []string{"-listen", "localhost:70000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestHeaderFlag_String(t *testing.T) {
	h := headerFlag{"X-B": "2", "X-A": "1"}
	assert.Equal(t, "X-A: 1, X-B: 2", h.String())
	assert.Empty(t, headerFlag{}.String())
}

func TestIDListFlag(t *testing.T) {
	var l idListFlag
	require.NoError(t, l.Set(" 1, 2,,3 "))
	assert.Equal(t, "1,2,3", l.String())

	var nilList *idListFlag
	assert.Empty(t, nilList.String())
}

func TestNetAddress(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())

	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	require.NoError(t, a.Set(":9090"))
	assert.Equal(t, ":9090", a.String())

	assert.Error(t, a.Set("localhost:http"))
}
