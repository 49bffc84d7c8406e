/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package token_test

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Token", func() {
	Describe("Description", func() {
		It("describes punctuators by their text", func() {
			tok := &token.Token{Kind: token.KindLeftBrace}
			Expect(tok.Description()).Should(Equal("{"))
		})

		It("includes value for tokens that carry one", func() {
			tok := &token.Token{
				Kind:  token.KindName,
				Value: "foo",
			}
			Expect(tok.Description()).Should(Equal(`Name "foo"`))
		})
	})

	Describe("LocationInfo", func() {
		It("resolves line and column through the attached Source", func() {
			source := token.NewSource(&token.SourceConfig{
				Body: token.SourceBody("query {\n  foo\n}"),
				Name: "op.graphql",
			})
			tok := &token.Token{
				Kind:     token.KindName,
				Source:   source,
				Location: source.LocationFromPos(10),
				Length:   3,
				Value:    "foo",
			}
			Expect(tok.LocationInfo()).Should(Equal(token.SourceLocationInfo{
				Name:   "op.graphql",
				Line:   2,
				Column: 3,
			}))
		})

		It("returns the zero value without a Source", func() {
			tok := &token.Token{Kind: token.KindName, Value: "foo"}
			Expect(tok.LocationInfo()).Should(Equal(token.SourceLocationInfo{}))
		})
	})

	Describe("Range", func() {
		It("is valid only when both ends are set", func() {
			first := &token.Token{Kind: token.KindName, Value: "a"}
			last := &token.Token{Kind: token.KindName, Value: "b", Prev: first}
			first.Next = last

			Expect(token.Range{First: first, Last: last}.IsValid()).Should(BeTrue())
			Expect(token.Range{First: first}.IsValid()).Should(BeFalse())
			Expect(token.Range{}.IsValid()).Should(BeFalse())
		})
	})
})
