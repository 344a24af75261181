package profile

import (
	"fmt"
	"strconv"

	"github.com/go-zoox/config"
	"github.com/go-zoox/fs"
)

// FileConfig is the layout of a profiles file (yaml, toml or json).
//
//	profiles:
//	  - id: home
//	    name: Home
//	    host: echo.websocket.org
//	    port: 443
//	    protocol: ws
//	    use_payload: true
//	    payload: "GET / HTTP/1.1[crlf]Host: [host][crlf][crlf]"
type FileConfig struct {
	Profiles []FileProfile `config:"profiles"`
}

type FileProfile struct {
	ID         string `config:"id"`
	Name       string `config:"name"`
	Host       string `config:"host"`
	Port       int64  `config:"port"`
	Username   string `config:"username"`
	Password   string `config:"password"`
	Payload    string `config:"payload"`
	Protocol   string `config:"protocol"`
	UsePayload bool   `config:"use_payload"`
}

// Load reads the profiles file at filepath into a new store. The default
// profile stays available unless the file redefines its id.
func Load(filepath string) (*Store, error) {
	if !fs.IsExist(filepath) {
		return nil, fmt.Errorf("config file not found at %s", filepath)
	}

	var cfg FileConfig
	if err := config.Load(&cfg, &config.LoadOptions{
		FilePath: filepath,
	}); err != nil {
		return nil, fmt.Errorf("failed to load config file at %s: %v", filepath, err)
	}

	store := NewStore()
	for i, fp := range cfg.Profiles {
		p, err := fp.Profile()
		if err != nil {
			return nil, fmt.Errorf("invalid profile #%d in %s: %v", i, filepath, err)
		}

		if _, err := store.Add(p); err != nil {
			return nil, fmt.Errorf("invalid profile #%d in %s: %v", i, filepath, err)
		}
	}

	return store, nil
}

// Profile converts the file entry, filling the defaults for port and
// protocol.
func (fp *FileProfile) Profile() (*Profile, error) {
	protocol := ProtocolWebSocket
	if fp.Protocol != "" {
		p, err := ParseProtocol(fp.Protocol)
		if err != nil {
			return nil, err
		}
		protocol = p
	}

	port := DefaultPort
	if fp.Port != 0 {
		port = strconv.FormatInt(fp.Port, 10)
	}

	return &Profile{
		ID:         fp.ID,
		Name:       fp.Name,
		Host:       fp.Host,
		Port:       port,
		Username:   fp.Username,
		Password:   fp.Password,
		Payload:    fp.Payload,
		Protocol:   protocol,
		UsePayload: fp.UsePayload,
	}, nil
}
