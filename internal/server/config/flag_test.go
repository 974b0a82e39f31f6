package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesSelectedFields(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server",
		"-a", ":9090",
		"-n", ":50052",
		"-d", "postgres://u:p@host:5432/db",
		"-s", "flag-secret",
		"-t", "30",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9090", c.EndpointAddrHTTP)
	assert.Equal(t, ":50052", c.EndpointAddrHealth)
	assert.Equal(t, "postgres://u:p@host:5432/db", c.DatabaseDSN)
	assert.Equal(t, "flag-secret", c.JWTSecret)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server", "-a", ":7070"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7070", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrHealth)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, "avatars", c.S3Bucket)
}

func TestParseFlags_S3Settings(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server",
		"-u", "miniouser",
		"-p", "miniopass",
		"-b", "profile-images",
		"-g", "eu-west-1",
		"-e", "http://minio:9000/",
		"-i", "https://assets.example.com",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "miniouser", c.S3RootUser)
	assert.Equal(t, "miniopass", c.S3RootPassword)
	assert.Equal(t, "profile-images", c.S3Bucket)
	assert.Equal(t, "eu-west-1", c.S3Region)
	assert.Equal(t, "http://minio:9000/", c.S3BaseEndpoint)
	assert.Equal(t, "https://assets.example.com", c.StaticAssetBase)
}
