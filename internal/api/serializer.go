package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/mkorsa/covidash/internal/pkg/constants"
)

// Serializer plugs sonic in as the router's JSON codec.
type Serializer struct{}

func NewSerializer() Serializer {
	return Serializer{}
}

func (Serializer) Serialize(c echo.Context, i interface{}, _ string) error {
	return sonic.ConfigDefault.NewEncoder(c.Response()).Encode(i)
}

func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	if err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("%v: %w", err, constants.ErrBadRequest)
	}
	return nil
}
