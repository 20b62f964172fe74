package pets

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgCreated = "Pet registered successfully"
	msgUpdated = "Pet updated successfully"
	msgDeleted = "Pet deleted successfully"
)

type RouteOptions struct {
	// StrictNotFound: si es true, GET/PUT/DELETE sobre un id inexistente responden 404.
	// Por defecto (false) responden 200 igual que cuando el id existe.
	StrictNotFound bool

	Logger logger.Logger // puede ser nil
}

func RegisterRoutes(r chi.Router, svc *Service, opts RouteOptions) {
	h := &handler{svc: svc, strict: opts.StrictNotFound, log: opts.Logger}
	if h.log == nil {
		h.log = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", h.list)
		pr.Post("/", h.create)

		pr.Get("/{id}", h.get)
		pr.Put("/{id}", h.update)
		pr.Delete("/{id}", h.delete)
	})
}

type handler struct {
	svc    *Service
	strict bool
	log    logger.Logger
}

// petPayload documenta el cuerpo de POST/PUT. En la práctica el body se
// decodifica campo por campo (ver decodeFields) para absorber tipos incorrectos.
type petPayload struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Age  float64 `json:"age"`
	Size Size    `json:"size" enums:"small,medium,large"`
}

// list godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas en orden de inserción. Si se envía `name`, filtra por nombre (substring, sin distinguir mayúsculas). `name` vacío equivale a no filtrar.
// @Tags pets
// @Produce json
// @Param name query string false "Substring a buscar en el nombre"
// @Success 200 {array} Pet
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.internalError(w, "list pets", err)
		return
	}
	if items == nil {
		items = []Pet{}
	}
	writeJSON(w, http.StatusOK, items)
}

// create godoc
// @Summary Registrar mascota
// @Description Agrega una mascota al final de la colección. No se validan los campos: los ausentes quedan vacíos y el id no se genera ni se verifica que sea único.
// @Tags pets
// @Accept json
// @Produce plain
// @Param payload body petPayload true "Datos de la mascota"
// @Success 201 {string} string "Pet registered successfully"
// @Failure 400 {string} string "invalid json"
// @Router /pets [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeFields(r.Body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	// Campos ausentes o con tipo incorrecto quedan en su zero value.
	in := CreateInput{}
	if v := stringField(raw, "id"); v != nil {
		in.ID = *v
	}
	if v := stringField(raw, "name"); v != nil {
		in.Name = *v
	}
	if v := numberField(raw, "age"); v != nil {
		in.Age = *v
	}
	if v := stringField(raw, "size"); v != nil {
		in.Size = Size(*v)
	}

	if _, err := h.svc.Create(r.Context(), in); err != nil {
		h.internalError(w, "create pet", err)
		return
	}

	writeText(w, http.StatusCreated, msgCreated)
}

// get godoc
// @Summary Obtener mascota por id
// @Description Devuelve la primera mascota cuyo id coincide exactamente. Si no existe responde 200 con cuerpo vacío (404 en modo estricto).
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {string} string "pet not found (solo modo estricto)"
// @Router /pets/{id} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w, func() { w.WriteHeader(http.StatusOK) })
			return
		}
		h.internalError(w, "get pet", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// update godoc
// @Summary Actualizar mascota (parcial)
// @Description Solo se modifican los campos presentes en el body. `age: 0` es un valor válido. Un id inexistente es un no-op que igual responde 200 (404 en modo estricto).
// @Tags pets
// @Accept json
// @Produce plain
// @Param id path string true "ID de la mascota"
// @Param payload body petPayload false "Cualquier subconjunto de id, name, age, size"
// @Success 200 {string} string "Pet updated successfully"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "pet not found (solo modo estricto)"
// @Router /pets/{id} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	raw, err := decodeFields(r.Body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	in := UpdateInput{
		ID:   stringField(raw, "id"),
		Name: stringField(raw, "name"),
		Age:  numberField(raw, "age"),
	}
	if v := stringField(raw, "size"); v != nil {
		s := Size(*v)
		in.Size = &s
	}

	if err := h.svc.Update(r.Context(), id, in); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w, func() { writeText(w, http.StatusOK, msgUpdated) })
			return
		}
		h.internalError(w, "update pet", err)
		return
	}

	writeText(w, http.StatusOK, msgUpdated)
}

// delete godoc
// @Summary Eliminar mascota
// @Description Elimina la primera mascota cuyo id coincide. Responde 200 exista o no (404 en modo estricto).
// @Tags pets
// @Produce plain
// @Param id path string true "ID de la mascota"
// @Success 200 {string} string "Pet deleted successfully"
// @Failure 404 {string} string "pet not found (solo modo estricto)"
// @Router /pets/{id} [delete]
func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w, func() { writeText(w, http.StatusOK, msgDeleted) })
			return
		}
		h.internalError(w, "delete pet", err)
		return
	}

	writeText(w, http.StatusOK, msgDeleted)
}

// notFound responde 404 en modo estricto; si no, ejecuta la respuesta "exitosa" por defecto.
func (h *handler) notFound(w http.ResponseWriter, lenient func()) {
	if h.strict {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	lenient()
}

func (h *handler) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error("pets: "+op+" failed", map[string]any{"error": err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

var errNotObject = errors.New("body must be a JSON object or array")

// decodeFields decodifica el body sin imponer tipos a los campos.
// - vacío => objeto vacío
// - objeto => sus campos
// - array => objeto vacío (se acepta pero no aporta campos)
// - escalares (string, número, bool, null) o datos después del primer valor => error
func decodeFields(body io.Reader) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(body)

	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}

	// Solo se permite whitespace después del valor.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("unexpected data after JSON value")
		}
		return nil, err
	}

	switch v[0] {
	case '{':
		raw := map[string]json.RawMessage{}
		if err := json.Unmarshal(v, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	case '[':
		return map[string]json.RawMessage{}, nil
	default:
		return nil, errNotObject
	}
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// stringField devuelve nil si el campo no viene, es null o no es un string.
func stringField(raw map[string]json.RawMessage, key string) *string {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	return &s
}

// numberField acepta números JSON o strings numéricos ("3").
// Cualquier otra cosa (ausente, null, NaN, texto) devuelve nil.
func numberField(raw map[string]json.RawMessage, key string) *float64 {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
