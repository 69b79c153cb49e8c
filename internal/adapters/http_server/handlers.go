package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"hobby_catalog/internal/adapters/notify"
	"hobby_catalog/internal/app"
	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

type Handlers struct {
	Home    *app.HomeService
	Detail  *app.DetailService
	Booking *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type bookRequest struct {
	EstablishmentID string `json:"establishmentId"`
	Name            string `json:"name,omitempty"`
	ActivityID      string `json:"activityId"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/home", h.home)
	s.mux.Get("/v1/lists/{slug}", h.list)
	s.mux.Get("/v1/categories", h.categories)
	s.mux.Get(catalog.DetailPath, h.detail)
	s.mux.Post(catalog.DetailPath+"/book", h.book)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this representation.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// etagMatches applies the weak comparison of RFC 9110 to an If-None-Match
// value, which may be "*" or a comma separated list of tags.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" || etag == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(tag), "W/") == want {
			return true
		}
	}
	return false
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	out, err := h.Home.Home(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.Home.List(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) categories(w http.ResponseWriter, r *http.Request) {
	columns := catalog.DefaultGridColumns
	if cs := r.URL.Query().Get("columns"); cs != "" {
		c, err := strconv.Atoi(cs)
		if err != nil || c <= 0 || c > 10 {
			writeProblem(w, http.StatusBadRequest, "Invalid columns", "columns must be an integer between 1 and 10")
			return
		}
		columns = c
	}
	rows, err := h.Home.Categories(columns)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, rows)
}

func (h *Handlers) detail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, ok := parseLatLon(q.Get("lat"), q.Get("lon"))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "lat and lon must be given together as decimal degrees")
		return
	}
	out, err := h.Detail.Detail(r.Context(), catalog.ParseDetailParams(q), from)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

// parseLatLon returns (nil, true) when neither value is present.
func parseLatLon(latS, lonS string) (*orb.Point, bool) {
	if latS == "" && lonS == "" {
		return nil, true
	}
	lat, err1 := strconv.ParseFloat(latS, 64)
	lon, err2 := strconv.ParseFloat(lonS, 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, false
	}
	return &orb.Point{lon, lat}, true
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON with establishmentId and activityId")
		return
	}
	p := domain.DetailParams{}
	if req.EstablishmentID != "" {
		p.ID = &req.EstablishmentID
	}
	if req.Name != "" {
		p.Name = &req.Name
	}
	ctx := notify.WithRequestID(r.Context(), chimw.GetReqID(r.Context()))
	if err := h.Booking.Book(ctx, p, req.ActivityID); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"status":"requested"}`))
}
