package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		BcryptCost         int      `json:"bcrypt_cost"`
		SessionLifetime    Duration `json:"session_lifetime"`
		ResetTokenLifetime Duration `json:"reset_token_lifetime"`
		ResetTokenLength   int      `json:"reset_token_length"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Notifier struct {
		GatewayURL  string   `json:"gateway_url"`
		Timeout     Duration `json:"timeout"`
		FromName    string   `json:"from_name"`
		FromAddress string   `json:"from_address"`
		FrontEndURL string   `json:"front_end_url"`
	} `json:"notifier,omitempty"`
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

	cfg := &StructuredConfig{
		Auth: Auth{
			BcryptCost:         jsonCfg.Auth.BcryptCost,
			SessionLifetime:    time.Duration(jsonCfg.Auth.SessionLifetime),
			ResetTokenLifetime: time.Duration(jsonCfg.Auth.ResetTokenLifetime),
			ResetTokenLength:   jsonCfg.Auth.ResetTokenLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Notifier: Notifier{
			GatewayURL:  jsonCfg.Notifier.GatewayURL,
			Timeout:     time.Duration(jsonCfg.Notifier.Timeout),
			FromName:    jsonCfg.Notifier.FromName,
			FromAddress: jsonCfg.Notifier.FromAddress,
			FrontEndURL: jsonCfg.Notifier.FrontEndURL,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
