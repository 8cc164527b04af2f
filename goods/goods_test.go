package goods_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/goods"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want goods.Good
	}{
		{"additive", goods.Additive},
		{"FF", goods.Additive},
		{" proportional ", goods.Proportional},
		{"pp", goods.Proportional},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			g, err := goods.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g)
		})
	}

	_, err := goods.Parse("public")
	require.ErrorIs(t, err, goods.ErrUnknownGood)
}

func TestValidateAndString(t *testing.T) {
	require.NoError(t, goods.Additive.Validate())
	require.NoError(t, goods.Proportional.Validate())
	require.ErrorIs(t, goods.Good(0).Validate(), goods.ErrUnknownGood)
	require.ErrorIs(t, goods.Good(3).Validate(), goods.ErrUnknownGood)

	assert.Equal(t, "additive", goods.Additive.String())
	assert.Equal(t, "pp", goods.Proportional.Short())
	assert.Equal(t, "Good(7)", goods.Good(7).String())
	assert.Equal(t, []goods.Good{goods.Additive, goods.Proportional}, goods.All)
}
