package telemetry

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/nimbushq/nimbus/pkg/xdg"
)

// clientIDFilename is the file under the nimbus config directory that
// holds the persistent anonymous client id.
const clientIDFilename = "client-id"

// ClientID returns the anonymous id that groups batches from one
// installation. The id is a random UUID with no link to any account; it
// is generated on first use and persisted so usage stats are not
// inflated by counting every invocation as a new install. If the id
// cannot be persisted, a fresh one is returned for this run only.
func ClientID() string {
	path, err := xdg.ConfigFile(clientIDFilename)
	if err != nil {
		return uuid.New().String()
	}

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.New().String()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return id
	}
	return id
}
