package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgattic/famicore/internal/cart"
	"github.com/pgattic/famicore/internal/nes"
)

func Test_traceLine(t *testing.T) {
	t.Run("listed address", func(t *testing.T) {
		crt, err := cart.FromBytes(demoImage())
		assert.NoError(t, err)

		console := nes.NewConsole()
		assert.NoError(t, console.LoadCart(crt))

		assert.Equal(t, "$8000: LDA #$45 {IMM}", traceLine(console, console.Disassemble()))
	})

	t.Run("address outside the listing", func(t *testing.T) {
		console := nes.NewConsole()

		assert.Equal(t, "$0000: ??? ($00)", traceLine(console, nil))
	})
}
