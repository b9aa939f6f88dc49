package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// EntityType names one persisted collection document.
type EntityType string

const (
	EntityVehicles    EntityType = "vehicles"
	EntityMaintenance EntityType = "maintenance"
	EntityInventory   EntityType = "inventory"
	EntityPermits     EntityType = "permits"
	EntityTokenTax    EntityType = "token_tax"
	EntityLoads       EntityType = "loads"
)

// countersDoc holds the durable per-entity id serials, independent of
// collection length so ids stay monotonic under any future delete.
const countersDoc = "counters"

var dataFiles = map[EntityType]string{
	EntityVehicles:    "vehicles.json",
	EntityMaintenance: "maintenance.json",
	EntityInventory:   "inventory.json",
	EntityPermits:     "permits.json",
	EntityTokenTax:    "token_tax.json",
	EntityLoads:       "loads.json",
}

// IsValidEntityType checks if a string names a persisted entity type.
func IsValidEntityType(s string) bool {
	_, ok := dataFiles[EntityType(s)]
	return ok
}

// InventoryOp selects how UpdateInventory changes a quantity.
type InventoryOp string

const (
	OpAdd      InventoryOp = "add"
	OpSubtract InventoryOp = "subtract"
	OpSet      InventoryOp = "set"
)

// Result reports the outcome of a mutating operation. Expected business
// conditions (duplicate key, insufficient stock, not found) come back as
// OK=false with a message the presentation layer can render directly;
// they are never errors.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Store is the persistence surface handed to the presentation layer. Reads
// degrade to the entity type's default value and never error; writes return
// a Result for business outcomes and an error only for I/O faults.
type Store interface {
	Vehicles() []models.Vehicle
	VehicleByPlate(plate string) (models.Vehicle, bool)
	AddVehicle(v models.Vehicle) (Result, error)
	UpdateVehicle(plate string, u models.VehicleUpdate) (Result, error)

	MaintenanceRecords(plate string) []models.MaintenanceRecord
	AddMaintenanceRecord(m models.MaintenanceRecord) (Result, error)

	Inventory() models.Inventory
	UpdateInventory(item string, quantity int, op InventoryOp) (Result, error)
	ResetInventory() (Result, error)

	Permits(plate string) []models.Permit
	AddPermit(p models.Permit) (Result, error)

	TaxRecords(plate string) []models.TaxRecord
	AddTaxRecord(t models.TaxRecord) (Result, error)

	Loads(plate string) []models.Load
	AddLoad(l models.Load) (Result, error)
	UpdateLoad(loadNumber string, u models.LoadUpdate) (Result, error)
	UpdateLoadStatus(loadNumber, status string) (Result, error)
}

// FileStore keeps each entity type in one indented JSON document under dir,
// loaded wholesale on every read and rewritten wholesale on every mutation.
// It assumes a single operator in a single process; concurrent writers can
// lose updates because saves overwrite whole documents.
type FileStore struct {
	dir string
	log *log.Logger
	now func() time.Time
}

var _ Store = (*FileStore)(nil)

// New creates a FileStore rooted at dir and writes the default document for
// any entity type that does not have one yet.
func New(dir string, logger *log.Logger) (*FileStore, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	s := &FileStore{dir: dir, log: logger, now: time.Now}
	for entity, filename := range dataFiles {
		if _, err := os.Stat(s.path(filename)); err == nil {
			continue
		}
		var err error
		if entity == EntityInventory {
			err = s.writeDoc(entity, models.DefaultInventory())
		} else {
			err = s.writeDoc(entity, []any{})
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// readDoc loads a document into out. A missing or unreadable document leaves
// out untouched and reports false so callers substitute the default value.
func (s *FileStore) readDoc(entity EntityType, out any) bool {
	data, err := os.ReadFile(s.path(dataFiles[entity]))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		// The next save will replace the corrupt document wholesale.
		s.log.WithFields(log.Fields{
			"entity": entity,
			"error":  err,
		}).Warn("corrupt data document, using default value")
		return false
	}
	return true
}

// writeDoc fully overwrites the persisted document for an entity type.
func (s *FileStore) writeDoc(entity EntityType, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", entity, err)
	}
	if err := os.WriteFile(s.path(dataFiles[entity]), data, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", entity, err)
	}
	metrics.DocumentWrites.WithLabelValues(string(entity)).Inc()
	return nil
}

// nextID returns the next id for an entity type from the durable counter
// document. count is the current collection length; it floors the counter so
// a lost counters document cannot hand out an id already in use.
func (s *FileStore) nextID(entity EntityType, count int) (int, error) {
	counters := map[string]int{}
	data, err := os.ReadFile(s.path(countersDoc + ".json"))
	if err == nil {
		if err := json.Unmarshal(data, &counters); err != nil {
			s.log.WithField("error", err).Warn("corrupt counters document, rebuilding from collection length")
			counters = map[string]int{}
		}
	}

	next := counters[string(entity)] + 1
	if next <= count {
		next = count + 1
	}
	counters[string(entity)] = next

	out, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode counters: %w", err)
	}
	if err := os.WriteFile(s.path(countersDoc+".json"), out, 0o644); err != nil {
		return 0, fmt.Errorf("failed to save counters: %w", err)
	}
	return next, nil
}

// timestamp formats the current time the way created_at/updated_at are
// persisted. RFC3339 keeps the strings zero-padded so lexicographic
// comparison matches chronological order.
func (s *FileStore) timestamp() string {
	return s.now().Format(time.RFC3339)
}
