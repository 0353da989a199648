package tagsoup_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lestrrat-go/tagsoup"
)

var benchPage = "<!DOCTYPE html><html><head><title>bench</title></head><body>" +
	strings.Repeat(`<div class="row" id=r><a href="/x?a=1&amp;b=2">link</a><br/><!-- sep --></div>`+"\n", 500) +
	"</body></html>"

// Profile with: go test -run '^$' -bench . -cpuprofile cpu.out
func BenchmarkRead(b *testing.B) {
	b.SetBytes(int64(len(benchPage)))
	for b.Loop() {
		r, err := tagsoup.NewReader(context.Background(), strings.NewReader(benchPage))
		if err != nil {
			b.Fatal(err)
		}
		for {
			ok, err := r.Read()
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				break
			}
		}
		_ = r.Close()
	}
}

func BenchmarkReadAttributes(b *testing.B) {
	b.SetBytes(int64(len(benchPage)))
	for b.Loop() {
		r, err := tagsoup.NewReader(context.Background(), strings.NewReader(benchPage))
		if err != nil {
			b.Fatal(err)
		}
		for {
			ok, err := r.Read()
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				break
			}
			if _, err := r.Attributes(); err != nil {
				b.Fatal(err)
			}
			if _, err := r.Value(); err != nil {
				b.Fatal(err)
			}
		}
		_ = r.Close()
	}
}

func BenchmarkOuterHTML(b *testing.B) {
	b.SetBytes(int64(len(benchPage)))
	for b.Loop() {
		r, err := tagsoup.NewReader(context.Background(), strings.NewReader(benchPage))
		if err != nil {
			b.Fatal(err)
		}
		for {
			ok, err := r.Read()
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				break
			}
			if name, _ := r.Name(); name == "body" {
				frag, err := r.GetOuterHTML()
				if err != nil {
					b.Fatal(err)
				}
				_, _ = io.Copy(io.Discard, frag)
				_ = frag.Close()
			}
		}
		_ = r.Close()
	}
}
