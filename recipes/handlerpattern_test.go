// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"testing"

	"github.com/murdos/rewrite-go/rewrite/rewritetest"
)

func TestHandlerMethodPattern(t *testing.T) {
	rewritetest.Run(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("items"))
	})
}
`, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("items"))
	})
}
`)
}

func TestHandlerMethodPatternLiteralGuard(t *testing.T) {
	rewritetest.Run(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register() {
	http.HandleFunc("/submit", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}
`, `
package p

import "net/http"

func register() {
	http.HandleFunc("POST /submit", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}
`)
}

func TestHandlerMethodPatternMultiMethod(t *testing.T) {
	// Two admitted methods cannot be expressed in one pattern.
	rewritetest.Unchanged(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("items"))
	})
}
`)
}

func TestHandlerMethodPatternAlreadyQualified(t *testing.T) {
	rewritetest.Unchanged(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("items"))
	})
}
`)
}

func TestHandlerMethodPatternSideEffectGuard(t *testing.T) {
	// A guard whose only statement is not an error report must stay:
	// deleting it would drop the call.
	rewritetest.Unchanged(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			audit(r)
			return
		}
		w.Write([]byte("items"))
	})
}

func audit(r *http.Request) {}
`)
}

func TestHandlerMethodPatternGuardWithWork(t *testing.T) {
	// A guard that does more than reject must stay.
	rewritetest.Unchanged(t, HandlerMethodPattern{}, `
package p

import "net/http"

func register(mux *http.ServeMux) {
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			audit(r)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
	})
}

func audit(r *http.Request) {}
`)
}
