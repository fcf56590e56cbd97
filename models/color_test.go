package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsversehub/colorapi/colorspace"
)

func TestNewColorDetail(t *testing.T) {
	detail := NewColorDetail(colorspace.RGB{R: 255, G: 0, B: 0})

	assert.Equal(t, "#ff0000", detail.Hex.Value)
	assert.Equal(t, "ff0000", detail.Hex.Clean)
	assert.Equal(t, "rgb(255,0,0)", detail.RGB.Value)
	assert.Equal(t, 0, detail.HSL.H)
	assert.Equal(t, 100, detail.HSL.S)
	assert.Equal(t, 50, detail.HSL.L)
	assert.Equal(t, 100, detail.HSV.V)
	assert.Equal(t, 76, detail.Contrast.Brightness)
	assert.False(t, detail.Contrast.IsLight)
	assert.Equal(t, "#ffffff", detail.Contrast.Value)
}

func TestNewColorDetailWhite(t *testing.T) {
	detail := NewColorDetail(colorspace.RGB{R: 255, G: 255, B: 255})

	assert.True(t, detail.Contrast.IsLight)
	assert.Equal(t, "#000000", detail.Contrast.Value)
	assert.Equal(t, 0, detail.HSL.S, "white is achromatic")
}

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser(UserSignupRequest{
		Username: "stargazer",
		Email:    "stargazer@example.com",
		Password: "hunter2hunter2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, Member, user.Kind)
	assert.NotEqual(t, "hunter2hunter2", user.HashedPassword)
}
