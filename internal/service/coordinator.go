package service

import (
	"context"
	"log"
	"time"

	"datasync-service/internal/store"
	"datasync-service/pkg/models"
)

// Coordinator is the single entry point for all actions. Write-side
// actions (REGISTER, LOGIN, SYNC_DATA) serialize on one process-wide
// lock with a bounded wait; GET_DATA reads lock-free and may observe a
// sync mid-replace. A lock wait that times out fails the request — the
// write never proceeds unprotected.
type Coordinator struct {
	creds *CredentialService
	sync  *SyncService
	query *QueryService

	dataTables []string
	lockWait   time.Duration
	writeLock  chan struct{}
}

func NewCoordinator(st *store.Store, dataTables []string, lockWait time.Duration) *Coordinator {
	return &Coordinator{
		creds:      NewCredentialService(st),
		sync:       NewSyncService(st),
		query:      NewQueryService(st, dataTables),
		dataTables: dataTables,
		lockWait:   lockWait,
		writeLock:  make(chan struct{}, 1),
	}
}

// Handle dispatches one request and maps every outcome, success or
// failure, onto the uniform envelope. Errors never escape to the caller.
func (c *Coordinator) Handle(ctx context.Context, req *models.SyncRequest) models.Envelope {
	if req.Action == "" {
		return models.ErrorEnvelope(ErrMissingAction)
	}

	switch req.Action {
	case models.ActionRegister, models.ActionLogin, models.ActionSyncData:
		if !c.acquireWriteLock(ctx) {
			log.Printf("❌ [LOCK] %s for %q gave up after %v", req.Action, req.Username, c.lockWait)
			return models.ErrorEnvelope(ErrLockTimeout)
		}
		defer c.releaseWriteLock()
		return c.handleWrite(ctx, req)
	case models.ActionGetData:
		return c.handleGetData(ctx, req)
	default:
		return models.ErrorEnvelope(unknownAction(req.Action))
	}
}

func (c *Coordinator) handleWrite(ctx context.Context, req *models.SyncRequest) models.Envelope {
	if req.Username == "" {
		return models.ErrorEnvelope(missingField("username"))
	}

	switch req.Action {
	case models.ActionRegister:
		if req.Password == "" {
			return models.ErrorEnvelope(missingField("password"))
		}
		if err := c.creds.Register(ctx, req.Username, req.Password); err != nil {
			return models.ErrorEnvelope(err)
		}
		return models.SuccessEnvelope("user registered", nil)

	case models.ActionLogin:
		if req.Password == "" {
			return models.ErrorEnvelope(missingField("password"))
		}
		if err := c.creds.Authenticate(ctx, req.Username, req.Password); err != nil {
			return models.ErrorEnvelope(err)
		}
		return models.SuccessEnvelope("login successful", nil)

	default: // models.ActionSyncData
		if req.Data == nil {
			return models.ErrorEnvelope(missingField("data"))
		}
		for table := range req.Data {
			if !c.isDataTable(table) {
				return models.ErrorEnvelope(unknownTable(table))
			}
		}
		// Iterate the configured list, not the request map, for a
		// deterministic table order.
		for _, table := range c.dataTables {
			items, ok := req.Data[table]
			if !ok {
				continue
			}
			if err := c.sync.SyncTable(ctx, table, req.Username, items); err != nil {
				return models.ErrorEnvelope(err)
			}
		}
		return models.SuccessEnvelope("data synced", nil)
	}
}

func (c *Coordinator) handleGetData(ctx context.Context, req *models.SyncRequest) models.Envelope {
	if req.Username == "" {
		return models.ErrorEnvelope(missingField("username"))
	}
	data, err := c.query.UserData(ctx, req.Username)
	if err != nil {
		return models.ErrorEnvelope(err)
	}
	return models.SuccessEnvelope("", data)
}

// isDataTable reports whether the name is in the configured list. The
// Users sheet is never a data table, so SYNC_DATA can never touch
// credentials.
func (c *Coordinator) isDataTable(name string) bool {
	if name == models.UsersTable {
		return false
	}
	for _, t := range c.dataTables {
		if t == name {
			return true
		}
	}
	return false
}

func (c *Coordinator) acquireWriteLock(ctx context.Context) bool {
	timer := time.NewTimer(c.lockWait)
	defer timer.Stop()
	select {
	case c.writeLock <- struct{}{}:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

func (c *Coordinator) releaseWriteLock() {
	<-c.writeLock
}
