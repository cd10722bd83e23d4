//go:build gofuzz

package wire

import "github.com/codebot/zenoh/codec"

// Fuzz implements a randomized fuzz test of the transport message
// decoder using go-fuzz: any input the decoder accepts is re-encoded,
// and inputs that decode and re-encode without error are reported as
// interesting (return 1). The re-encoded bytes are not compared with the
// input, and an encode error is not treated as a failure.
//
// To run the fuzzer, first download go-fuzz:
// `go get github.com/dvyukov/go-fuzz/...`
//
// Then build the testing package:
// `go-fuzz-build github.com/codebot/zenoh/wire`
//
// And run the fuzzer on the corpus:
// ```
// go-fuzz -bin=wire-fuzz.zip -workdir=fuzzer
// ```
func Fuzz(data []byte) int {
	msg, err := DecodeTransportMessage(codec.NewReader(data))
	if err != nil {
		return 0
	}

	w := codec.NewWriter()
	if err := EncodeTransportMessage(w, msg); err != nil {
		return 0
	}

	return 1
}
