//go:build wireinject

package lstr

import (
	"github.com/google/wire"
)

func InitApp(argv Argv, streams Streams) (*App, func(), error) {
	panic(wire.Build(Wires))
}
