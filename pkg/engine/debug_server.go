package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/go-drift/ripple/pkg/errors"
)

// frameStreamInterval is how often /frames/stream pushes new samples.
const frameStreamInterval = 100 * time.Millisecond

// DebugSource is what the debug server reports on. Nil fields disable the
// endpoints that need them.
type DebugSource struct {
	Trace   *FrameTraceBuffer
	Runtime *RuntimeSampleBuffer
	// Info returns the latest loop snapshot, typically Loop.Info.
	Info func() *DebugInfo
}

// DebugServer serves loop diagnostics as JSON over HTTP:
//
//	/health         liveness
//	/debug          loop state without trees
//	/render-tree    source and target tree shapes
//	/frames         frame trace, filtered by limit, min_ms, build_ms,
//	                join_ms, render_ms, flush_ms, rebuilt and animating
//	/frames/stream  websocket pushing new frame samples as they are traced
//	/runtime        runtime samples, filtered by window (seconds) and limit
//	/jank           frames and runtime samples together
type DebugServer struct {
	server   *http.Server
	listener net.Listener
	src      DebugSource
}

// StartDebugServer listens on addr and serves src in the background. Use
// port 0 for an ephemeral port.
func StartDebugServer(addr string, src DebugSource) (*DebugServer, error) {
	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.New("engine.StartDebugServer", errors.KindConfig, err)
	}

	s := &DebugServer{listener: listener, src: src}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/debug", s.handleDebug)
	mux.HandleFunc("/render-tree", s.handleRenderTree)
	mux.HandleFunc("/frames", s.handleFrameTimeline)
	mux.HandleFunc("/frames/stream", s.handleFrameStream)
	mux.HandleFunc("/runtime", s.handleRuntime)
	mux.HandleFunc("/jank", s.handleJankSnapshot)
	s.server = &http.Server{Handler: mux}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errors.ReportError("engine.DebugServer", errors.KindTarget, err)
		}
	}()
	return s, nil
}

// Port returns the port the server listens on.
func (s *DebugServer) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Close gracefully shuts the server down.
func (s *DebugServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to a buffer first so errors still produce a status.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *DebugServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *DebugServer) info(w http.ResponseWriter) *DebugInfo {
	if s.src.Info == nil {
		http.Error(w, "inspection disabled", http.StatusServiceUnavailable)
		return nil
	}
	info := s.src.Info()
	if info == nil {
		http.Error(w, "no frame drawn yet", http.StatusServiceUnavailable)
	}
	return info
}

func (s *DebugServer) handleDebug(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if info := s.info(w); info != nil {
		summary := *info
		summary.Source, summary.Target = nil, nil
		writeJSON(w, summary)
	}
}

func (s *DebugServer) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if info := s.info(w); info != nil {
		writeJSON(w, struct {
			Source *TreeNode `json:"source"`
			Target *TreeNode `json:"target"`
		}{info.Source, info.Target})
	}
}

func (s *DebugServer) handleFrameTimeline(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if s.src.Trace == nil {
		http.Error(w, "frame tracing disabled", http.StatusServiceUnavailable)
		return
	}
	resp := s.src.Trace.Snapshot()
	applyFrameFilters(r, &resp)
	writeJSON(w, resp)
}

// handleFrameStream pushes every newly traced frame sample to a websocket
// client until it disconnects.
func (s *DebugServer) handleFrameStream(w http.ResponseWriter, r *http.Request) {
	if s.src.Trace == nil {
		http.Error(w, "frame tracing disabled", http.StatusServiceUnavailable)
		return
	}
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	ctx := conn.CloseRead(r.Context())

	ticker := time.NewTicker(frameStreamInterval)
	defer ticker.Stop()
	last := -1.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		samples := s.src.Trace.Snapshot().Samples
		fresh := samples[:0:0]
		for _, sample := range samples {
			if sample.AppTime > last {
				fresh = append(fresh, sample)
			}
		}
		if len(fresh) == 0 {
			continue
		}
		last = fresh[len(fresh)-1].AppTime
		if err := wsjson.Write(ctx, conn, fresh); err != nil {
			return
		}
	}
}

func (s *DebugServer) handleRuntime(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if s.src.Runtime == nil {
		http.Error(w, "runtime sampling disabled", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, struct {
		Samples []RuntimeSample `json:"samples"`
	}{applyRuntimeFilters(r, s.src.Runtime.Snapshot())})
}

func (s *DebugServer) handleJankSnapshot(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	if s.src.Trace == nil || s.src.Runtime == nil {
		http.Error(w, "frame tracing and runtime sampling are both required", http.StatusServiceUnavailable)
		return
	}
	frames := s.src.Trace.Snapshot()
	applyFrameFilters(r, &frames)
	writeJSON(w, struct {
		Frames  FrameTimeline   `json:"frames"`
		Runtime []RuntimeSample `json:"runtime"`
	}{frames, applyRuntimeFilters(r, s.src.Runtime.Snapshot())})
}

func applyFrameFilters(r *http.Request, resp *FrameTimeline) {
	var filters []func(FrameSample) bool
	threshold := func(key string, field func(FrameSample) float64) {
		if v := parseFloatQuery(r, key); v > 0 {
			filters = append(filters, func(s FrameSample) bool { return field(s) >= v })
		}
	}
	threshold("min_ms", func(s FrameSample) float64 { return s.FrameMs })
	threshold("build_ms", func(s FrameSample) float64 { return s.Phases.BuildMs })
	threshold("join_ms", func(s FrameSample) float64 { return s.Phases.JoinMs })
	threshold("render_ms", func(s FrameSample) float64 { return s.Phases.RenderMs })
	threshold("flush_ms", func(s FrameSample) float64 { return s.Phases.FlushMs })
	if parseBoolQuery(r, "rebuilt") {
		filters = append(filters, func(s FrameSample) bool { return s.Flags.Rebuilt })
	}
	if parseBoolQuery(r, "animating") {
		filters = append(filters, func(s FrameSample) bool { return s.Flags.Animating })
	}

	if len(filters) > 0 {
		filtered := make([]FrameSample, 0, len(resp.Samples))
	outer:
		for _, sample := range resp.Samples {
			for _, f := range filters {
				if !f(sample) {
					continue outer
				}
			}
			filtered = append(filtered, sample)
		}
		resp.Samples = filtered
	}
	if limit := parseLimit(r); limit > 0 && len(resp.Samples) > limit {
		resp.Samples = resp.Samples[len(resp.Samples)-limit:]
	}
}

func applyRuntimeFilters(r *http.Request, samples []RuntimeSample) []RuntimeSample {
	if windowSeconds := parseFloatQuery(r, "window"); windowSeconds > 0 {
		cutoff := time.Now().Add(-time.Duration(windowSeconds * float64(time.Second))).UnixMilli()
		filtered := make([]RuntimeSample, 0, len(samples))
		for _, sample := range samples {
			if sample.Timestamp >= cutoff {
				filtered = append(filtered, sample)
			}
		}
		samples = filtered
	}
	if limit := parseLimit(r); limit > 0 && len(samples) > limit {
		samples = samples[len(samples)-limit:]
	}
	return samples
}

func parseLimit(r *http.Request) int {
	parsed, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func parseFloatQuery(r *http.Request, key string) float64 {
	parsed, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func parseBoolQuery(r *http.Request, key string) bool {
	parsed, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && parsed
}
