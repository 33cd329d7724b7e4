// Command server exposes the tasrif conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/parse?verb=<diacritized verb>
//	GET /api/conjugate?verb=<verb>&tense=past|present[&bab=<id>][&mood=<id>]
//	GET /api/babs
//	GET /api/moods
//	GET /api/examples
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	tasrif "github.com/cours-de-arabe/tasrif"
)

// ---- JSON response types ------------------------------------------------

type rootJSON struct {
	F      string `json:"f"`
	A      string `json:"a"`
	L      string `json:"l"`
	VowelF string `json:"vowel_f"`
	VowelA string `json:"vowel_a"`
}

type formJSON struct {
	Index        int    `json:"index"`
	Pronoun      string `json:"pronoun"`
	Gloss        string `json:"gloss"`
	PersonGender string `json:"person_gender"`
	Number       string `json:"number"`
	Surface      string `json:"surface"`
}

type conjugateResponse struct {
	Title string     `json:"title"`
	Forms []formJSON `json:"forms"`
}

type babJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type moodJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type exampleJSON struct {
	Verb string `json:"verb"`
	Bab  string `json:"bab"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// parseVerb runs the root parser on a query-supplied verb. Query
// parameters carry logical-order text, while ParseRoot consumes
// surface-captured order, so the value is flipped first.
func parseVerb(verb string) (tasrif.Root, error) {
	return tasrif.ParseRoot(tasrif.Reverse(verb))
}

func toFormsJSON(forms []tasrif.Form) []formJSON {
	out := make([]formJSON, 0, len(forms))
	for _, f := range forms {
		spec := f.Spec()
		out = append(out, formJSON{
			Index:        f.Index,
			Pronoun:      spec.Pronoun,
			Gloss:        spec.Gloss,
			PersonGender: spec.PersonGender.String(),
			Number:       spec.Number.String(),
			Surface:      f.Surface,
		})
	}
	return out
}

// ---- handlers -----------------------------------------------------------

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		verb := r.URL.Query().Get("verb")
		if verb == "" {
			writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
			return
		}
		root, err := parseVerb(verb)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rootJSON{
			F:      root.F,
			A:      root.A,
			L:      root.L,
			VowelF: root.VowelF,
			VowelA: root.VowelA,
		})
	}
}

func handleConjugate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		verb := q.Get("verb")
		if verb == "" {
			writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
			return
		}

		tense, err := tasrif.ParseTense(q.Get("tense"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var opts tasrif.Options
		if tense == tasrif.Present {
			if opts.Bab, err = tasrif.ParseBab(q.Get("bab")); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			if opts.Mood, err = tasrif.ParseMood(q.Get("mood")); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		root, err := parseVerb(verb)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := tasrif.Conjugate(root, tense, opts)
		if err != nil {
			status := http.StatusBadRequest
			var cfg *tasrif.ConfigError
			if !errors.As(err, &cfg) {
				status = http.StatusInternalServerError
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, conjugateResponse{
			Title: res.Title,
			Forms: toFormsJSON(res.Forms[:]),
		})
	}
}

func handleBabs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]babJSON, 0, 6)
		for _, b := range tasrif.AllBabs() {
			out = append(out, babJSON{ID: b.ID(), Label: b.Label()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleMoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]moodJSON, 0, 3)
		for _, m := range tasrif.AllMoods() {
			out = append(out, moodJSON{ID: m.ID(), Label: m.Label()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleExamples() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]exampleJSON, 0, len(tasrif.ExampleVerbs))
		for _, ex := range tasrif.ExampleVerbs {
			out = append(out, exampleJSON{Verb: ex.Verb, Bab: ex.Bab.ID()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse())
	mux.HandleFunc("/api/conjugate", handleConjugate())
	mux.HandleFunc("/api/babs", handleBabs())
	mux.HandleFunc("/api/moods", handleMoods())
	mux.HandleFunc("/api/examples", handleExamples())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
