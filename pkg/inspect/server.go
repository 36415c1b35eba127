package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

// inspectServer manages the HTTP server for binding inspection.
type inspectServer struct {
	server     *http.Server
	listener   net.Listener
	events     *EventBuffer
	prevTracer observe.Tracer
	mu         sync.Mutex
}

var inspectSrv inspectServer

// Start launches the inspector on the given port and installs the
// notification tracer that feeds the event log. Port 0 picks an
// ephemeral port; the actual port is returned. Starting an already
// running inspector returns its current port.
func Start(port int) (int, error) {
	inspectSrv.mu.Lock()
	defer inspectSrv.mu.Unlock()

	if inspectSrv.server != nil {
		if inspectSrv.listener != nil {
			return inspectSrv.listener.Addr().(*net.TCPAddr).Port, nil
		}
		return port, nil
	}

	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("inspect listen: %w", err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	// The inspector borrows the tracer slot; the previous tracer is
	// restored on Stop.
	events := NewEventBuffer(0)
	prevTracer := observe.InstalledTracer()
	observe.SetTracer(events)

	mux := http.NewServeMux()
	mux.HandleFunc("/notifiers", handleNotifiers)
	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/properties", handleProperties)
	mux.HandleFunc("/health", handleHealth)

	server := &http.Server{Handler: mux}
	inspectSrv.server = server
	inspectSrv.listener = listener
	inspectSrv.events = events
	inspectSrv.prevTracer = prevTracer

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			// Server failed - clear state so it can be restarted
			inspectSrv.mu.Lock()
			inspectSrv.server = nil
			inspectSrv.listener = nil
			inspectSrv.events = nil
			inspectSrv.prevTracer = nil
			inspectSrv.mu.Unlock()
			restoreTracer(events, prevTracer)
			fmt.Printf("inspect server error: %v\n", err)
		}
	}()

	return actualPort, nil
}

// Stop gracefully shuts down the inspector and restores the tracer
// that was installed when Start ran. A tracer installed by the
// application after Start is left in place.
func Stop() {
	inspectSrv.mu.Lock()
	server := inspectSrv.server
	events := inspectSrv.events
	prevTracer := inspectSrv.prevTracer
	inspectSrv.server = nil
	inspectSrv.listener = nil
	inspectSrv.events = nil
	inspectSrv.prevTracer = nil
	inspectSrv.mu.Unlock()

	if server == nil {
		return
	}
	restoreTracer(events, prevTracer)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// restoreTracer puts prev back only if the tracer slot still holds the
// inspector's buffer; anything installed since stays.
func restoreTracer(events *EventBuffer, prev observe.Tracer) {
	if observe.InstalledTracer() == observe.Tracer(events) {
		observe.SetTracer(prev)
	}
}

// currentEvents returns the live event buffer, or nil when stopped.
func currentEvents() *EventBuffer {
	inspectSrv.mu.Lock()
	defer inspectSrv.mu.Unlock()
	return inspectSrv.events
}

// writeJSON encodes v to a buffer first so encoding errors surface as a
// 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleNotifiers returns the registered notifiers as JSON.
func handleNotifiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var response struct {
		Notifiers []NotifierStats `json:"notifiers"`
		Count     int             `json:"count"`
	}
	response.Notifiers = Snapshot()
	response.Count = len(response.Notifiers)
	writeJSON(w, response)
}

// handleEvents returns the notification log. Query parameters:
// limit=N keeps the most recent N samples, property=<name> filters by
// property name.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events := currentEvents()
	if events == nil {
		http.Error(w, "inspector stopped", http.StatusServiceUnavailable)
		return
	}

	samples := events.Snapshot()
	if property := r.URL.Query().Get("property"); property != "" {
		filtered := samples[:0]
		for _, s := range samples {
			if s.Property == property {
				filtered = append(filtered, s)
			}
		}
		samples = filtered
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		if limit < len(samples) {
			samples = samples[len(samples)-limit:]
		}
	}

	var response struct {
		Samples []EventSample `json:"samples"`
		Total   uint64        `json:"total"`
	}
	response.Samples = samples
	response.Total = events.Total()
	writeJSON(w, response)
}

// handleProperties returns the registered property table.
func handleProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := observe.SortedPropertyNames()
	type property struct {
		ID   int32  `json:"id"`
		Name string `json:"name"`
	}
	properties := make([]property, 0, len(names))
	for _, name := range names {
		p, ok := observe.PropertyByName(name)
		if !ok {
			continue
		}
		properties = append(properties, property{ID: int32(p), Name: name})
	}

	var response struct {
		Properties []property `json:"properties"`
		Count      int        `json:"count"`
	}
	response.Properties = properties
	response.Count = len(properties)
	writeJSON(w, response)
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
