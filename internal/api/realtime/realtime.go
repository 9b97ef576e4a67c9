// Package realtime streams document and collection snapshots to HTTP
// clients over Server-Sent Events. A subscriber first receives the
// current snapshot, then one fresh snapshot per data-change event
// touching what it watches. Errors end the stream; the client decides
// whether to reconnect.
package realtime

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	"github.com/cobreklo/portafolio-api/internal/api/events"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/logger"
)

// SnapshotFunc produces the current state of a watched document or list.
type SnapshotFunc func(ctx context.Context) (interface{}, error)

// Hub maps subscribable names onto snapshot providers and fans bus
// events out to the open streams. Only explicitly registered targets are
// subscribable; unknown paths are 404, not a window into raw collections.
type Hub struct {
	bus *events.Bus

	mu    sync.RWMutex
	docs  map[string]map[string]SnapshotFunc
	lists map[string]SnapshotFunc
}

// NewHub creates a hub over the given bus.
func NewHub(bus *events.Bus) *Hub {
	return &Hub{
		bus:   bus,
		docs:  make(map[string]map[string]SnapshotFunc),
		lists: make(map[string]SnapshotFunc),
	}
}

// RegisterDoc makes collection/key subscribable through snapshot.
func (h *Hub) RegisterDoc(collection, key string, snapshot SnapshotFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.docs[collection] == nil {
		h.docs[collection] = make(map[string]SnapshotFunc)
	}
	h.docs[collection][key] = snapshot
}

// RegisterList makes the whole collection subscribable through snapshot.
func (h *Hub) RegisterList(collection string, snapshot SnapshotFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lists[collection] = snapshot
}

func (h *Hub) docSnapshot(collection, key string) (SnapshotFunc, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	group, ok := h.docs[collection]
	if !ok {
		return nil, false
	}
	fn, ok := group[key]
	return fn, ok
}

func (h *Hub) listSnapshot(collection string) (SnapshotFunc, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn, ok := h.lists[collection]
	return fn, ok
}

// SubscribeDoc handles GET /subscribe/doc/:collection/:key.
func (h *Hub) SubscribeDoc(c fiber.Ctx) error {
	collection := c.Params("collection")
	key := c.Params("key")
	snapshot, ok := h.docSnapshot(collection, key)
	if !ok {
		return basehdl.Failure(c, common.ErrNotFound)
	}
	return h.stream(c, collection, snapshot)
}

// SubscribeList handles GET /subscribe/collection/:collection.
func (h *Hub) SubscribeList(c fiber.Ctx) error {
	collection := c.Params("collection")
	snapshot, ok := h.listSnapshot(collection)
	if !ok {
		return basehdl.Failure(c, common.ErrNotFound)
	}
	return h.stream(c, collection, snapshot)
}

// stream writes SSE frames: the snapshot immediately, then one snapshot
// per change event on the collection. Event payloads are recomputed from
// the snapshot provider rather than forwarded raw, so every frame a
// client sees is a consistent, normalized view.
func (h *Hub) stream(c fiber.Ctx, collection string, snapshot SnapshotFunc) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	log := logger.GetAppLogger()
	done := c.RequestCtx().Done()

	c.RequestCtx().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx := context.Background()

		if err := writeFrame(w, ctx, snapshot); err != nil {
			writeError(w, err)
			return
		}

		changes := make(chan struct{}, 1)
		unsubscribe := h.bus.Subscribe(collection, func(events.DataChangeEvent) error {
			select {
			case changes <- struct{}{}:
			default:
			}
			return nil
		})
		defer unsubscribe()

		for {
			select {
			case <-done:
				return
			case <-changes:
			}
			if err := writeFrame(w, ctx, snapshot); err != nil {
				writeError(w, err)
				return
			}
			if err := w.Flush(); err != nil {
				// Client went away.
				log.Debugf("SSE stream for %s closed: %v", collection, err)
				return
			}
		}
	}))

	return nil
}

func writeFrame(w *bufio.Writer, ctx context.Context, snapshot SnapshotFunc) error {
	data, err := snapshot(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

// writeError emits a terminal error frame. The stream ends here; there is
// no automatic retry on the server side.
func writeError(w *bufio.Writer, err error) {
	message := "stream error"
	var appErr *common.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	fmt.Fprintf(w, "event: error\ndata: {\"message\":%q}\n\n", message)
	w.Flush()
}
