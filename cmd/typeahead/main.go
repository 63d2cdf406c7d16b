// A simple spelling corrector implemented as a HTTP server.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dnamatch/fuzztrie"
)

var usage = `
typeahead implements a simple spelling corrector served over HTTP.

Example: /search?q=helo returns the closest spelling correction for "helo".

Accepted query params are:
 q: The string query. Default is the empty string.
 d: The edit distance to search within. Default is 2.
 sub: If non-zero, search for the query as a substring of a larger
      haystack line instead of matching whole dictionary words.

Parameters:
`

var dictFile = flag.String("dictionary", "/usr/share/dict/words",
	"A file containing correctly spelled words, one per line.")

var port = flag.Int("port", 3000, "The port the server will listen on.")

var logger *log.Logger

// newSearchHandler loads the dictionary file at filename into a Trie and
// returns the Trie wrapped in a searchHandler. The dictionary file should
// contain a list of words, one per line.
func newSearchHandler(filename string) searchHandler {
	logger.Printf("Loading %v, this may take a few seconds...\n", filename)
	start := time.Now()
	file, err := os.Open(filename)
	if err != nil {
		panic(fmt.Sprintf("%v: %v", filename, err))
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	var words []string
	for scanner.Scan() {
		words = append(words, strings.ToLower(scanner.Text()))
	}
	t := fuzztrie.New(words, true /* allowIndels */, true /* immutable */)
	elapsed := time.Since(start)
	logger.Printf("Loaded %v words from %v in time %v.\n", t.Len(), filename, elapsed)
	return searchHandler{t: t}
}

type searchHandler struct {
	t *fuzztrie.Trie
}

func (s searchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := ""
	if qp, ok := params["q"]; ok && len(qp) > 0 {
		query = qp[0]
	}
	dist := 2
	if qp, ok := params["d"]; ok && len(qp) > 0 {
		if i, err := strconv.Atoi(qp[0]); err == nil {
			dist = i
		}
	}
	substring := false
	if qp, ok := params["sub"]; ok && len(qp) > 0 {
		if i, err := strconv.Atoi(qp[0]); err == nil && i != 0 {
			substring = true
		}
	}
	result := map[string]interface{}{}
	if query != "" {
		start := time.Now()
		if substring {
			entry, d, from, to, ok, err := s.t.SearchSubstring(query, dist)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			result["found"] = ok
			if ok {
				result["entry"], result["distance"] = entry, d
				result["start"], result["end"] = from, to
			}
		} else {
			entry, d, ok, err := s.t.Search(query, dist)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			result["found"] = ok
			if ok {
				result["entry"], result["distance"] = entry, d
			}
		}
		logger.Printf("Query %q (d=%v, sub=%v) returned %+v in %v\n",
			query, dist, substring, result, time.Since(start))
	}
	j, _ := json.Marshal(result)
	w.Header().Set("Content-Type", "application/json")
	w.Write(j)
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	logger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	http.Handle("/search", newSearchHandler(*dictFile))
	logger.Printf("Serving on http://0.0.0.0:%d\n", *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
		logger.Fatal(err)
	}
}
