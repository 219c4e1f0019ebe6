package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// configuration file. Durations may be written as strings ("30s") or as
// nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string `json:"token_sign_key"`
		TokenIssuer          string `json:"token_issuer"`
		DefaultAdminPassword string `json:"default_admin_password"`
		Version              string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			S3      struct {
				Bucket       string `json:"bucket"`
				Region       string `json:"region"`
				Endpoint     string `json:"endpoint"`
				AccessKey    string `json:"access_key"`
				SecretKey    string `json:"secret_key"`
				UsePathStyle bool   `json:"use_path_style"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HashingConcurrency int `json:"hashing_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Files.S3
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			DefaultAdminPassword: jsonCfg.App.DefaultAdminPassword,
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend: jsonCfg.Storage.Files.Backend,
				Dir:     jsonCfg.Storage.Files.Dir,
				S3: S3{
					Bucket:       s3.Bucket,
					Region:       s3.Region,
					Endpoint:     s3.Endpoint,
					AccessKey:    s3.AccessKey,
					SecretKey:    s3.SecretKey,
					UsePathStyle: s3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HashingConcurrency: jsonCfg.Workers.HashingConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
