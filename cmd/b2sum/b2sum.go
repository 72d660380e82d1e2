// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Command b2sum prints BLAKE2 digests of files, or of standard input.
//
//	cat file | b2sum -a blake2sp
//	b2sum -a blake2b -l 32 -k 000102 a.txt b.txt
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

const readBufferSize = 64 << 10

type cli struct {
	Algorithm string   `short:"a" default:"blake2b" help:"Hash algorithm: blake2b, blake2bp, blake2s or blake2sp"`
	Length    int      `short:"l" default:"0" help:"Digest length in bytes, 0 for maximum of algorithm"`
	Key       string   `short:"k" help:"Hex-encoded key, enables keyed hashing"`
	Files     []string `arg:"" optional:"" help:"Files to hash, standard input if none or -"`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("b2sum"),
		kong.Description("Print BLAKE2 (blake2b, blake2bp, blake2s, blake2sp) digests."))

	log.SetFlags(0)
	log.SetPrefix("b2sum: ")

	opts, err := params.options()
	if err != nil {
		log.Fatal(err)
	}
	if !run(opts, params.Files, os.Stdin, os.Stdout) {
		os.Exit(1)
	}
}

// run returns false if any input failed, remaining inputs are still hashed
func run(opts options, files []string, stdin io.Reader, stdout io.Writer) bool {
	if len(files) == 0 {
		files = []string{"-"}
	}
	ok := true
	buf := make([]byte, readBufferSize)
	for _, name := range files {
		digest, err := digestFile(opts, name, stdin, buf)
		if err != nil {
			log.Printf("%s: %v", name, err)
			ok = false
			continue
		}
		if _, err := fmt.Fprintf(stdout, "%s  %s\n", hex.EncodeToString(digest), name); err != nil {
			log.Printf("write output: %v", err)
			return false
		}
	}
	return ok
}

func digestFile(opts options, name string, stdin io.Reader, buf []byte) ([]byte, error) {
	if name == "-" {
		return digestReader(opts, stdin, buf)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return digestReader(opts, f, buf)
}

func digestReader(opts options, r io.Reader, buf []byte) ([]byte, error) {
	h, err := opts.newHash()
	if err != nil {
		return nil, err
	}
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}
	return h.Digest()
}
