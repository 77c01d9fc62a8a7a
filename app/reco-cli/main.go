// reco-cli is the stdio transport for the recommendation engine: it reads
// one JSON input document from stdin and writes the recommendation set to
// stdout. Failures are written to stderr as {"error": msg} with a non-zero
// exit status.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"wiseBuy/business/recommend"
	"wiseBuy/domain"
)

func fail(message string) {
	out, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		fmt.Fprintln(os.Stderr, `{"error":"unknown error"}`)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, string(out))
	os.Exit(1)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fail(fmt.Sprintf("%v", r))
		}
	}()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fail(fmt.Sprintf("failed to read input: %v", err))
	}

	var input domain.RecommendationInput
	if err := json.Unmarshal(raw, &input); err != nil {
		fail(fmt.Sprintf("invalid JSON input: %v", err))
	}

	engine := recommend.NewEngine(recommend.DefaultConfig())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	result := domain.RecommendationResult{
		Recommendations: engine.Recommend(input, rng),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fail(fmt.Sprintf("failed to encode output: %v", err))
	}
}
