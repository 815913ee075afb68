// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"encoding/hex"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const DefaultPasswordWords = 3

type PasswordGeneratorService interface {
	Generate() (string, error)
}

type PasswordGenerator struct {
	words int
}

func NewPasswordGenerator(words int) *PasswordGenerator {
	if words < 1 {
		words = DefaultPasswordWords
	}
	return &PasswordGenerator{
		words: words,
	}
}

// Generate returns pet name words followed by six random hex characters,
// all joined with "-", e.g. "wildly-fond-gecko-3fa2c1".
func (g *PasswordGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return strings.Join([]string{petname.Generate(g.words, "-"), hex.EncodeToString(id[:3])}, "-"), nil
}
