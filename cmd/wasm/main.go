//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/goccy/go-json"
	"github.com/smallyu/go-curv-hash/pkg/curv"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Curv-Hash WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoCurv", map[string]interface{}{
		"HashToInt":    js.FuncOf(HashToInt),
		"HashToScalar": js.FuncOf(HashToScalar),
		"Curves":       js.FuncOf(Curves),
	})

	<-c
}

// HashToInt hashes a list of integers.
// Arguments:
// 0: JSON array of hex strings
// Returns:
// Hex digest integer (string) or "error: ..."
func HashToInt(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonValues)"
	}

	var values []string
	if err := json.Unmarshal([]byte(args[0].String()), &values); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	out, err := curv.HashToIntHex(values)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// HashToScalar hashes a list of points of one curve.
// Arguments:
// 0: Curve name (string)
// 1: JSON array of hex-encoded points
// Returns:
// Hex scalar encoding (string) or "error: ..."
func HashToScalar(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, jsonPoints)"
	}

	var points []string
	if err := json.Unmarshal([]byte(args[1].String()), &points); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	out, err := curv.HashToScalarHex(args[0].String(), points)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// Curves returns the compiled-in curve names as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	b, err := json.Marshal(curv.Curves())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
