package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {

	t.Run("WidthScalesWithRuneCellCount", func(t *testing.T) {

		measurer := NewFontMeasurer("Segoe UI", 13)

		// act
		width, _ := measurer.Measure("build")

		// 5 cells * 13px * 0.6 advance, rounded, plus padding on both sides
		assert.Equal(t, 49.0, width)
	})

	t.Run("HeightDependsOnFontSizeOnly", func(t *testing.T) {

		measurer := NewFontMeasurer("Segoe UI", 13)

		// act
		_, shortHeight := measurer.Measure("a")
		_, longHeight := measurer.Measure("a much longer text")

		assert.Equal(t, 22.0, shortHeight)
		assert.Equal(t, shortHeight, longHeight)
	})

	t.Run("DoubleWidthRunesCountTwice", func(t *testing.T) {

		measurer := NewFontMeasurer("Segoe UI", 13)

		// act
		latin, _ := measurer.Measure("ab")
		wide, _ := measurer.Measure("あ")

		assert.Equal(t, latin, wide)
	})

	t.Run("EmptyTextStillGetsCellPadding", func(t *testing.T) {

		measurer := NewFontMeasurer("Segoe UI", 13)

		// act
		width, height := measurer.Measure("")

		assert.Equal(t, 10.0, width)
		assert.Equal(t, 22.0, height)
	})
}
