package setup

import (
	"context"

	"github.com/cordialsys/addrconv/config"
	"github.com/cordialsys/addrconv/convert"
)

type ContextKey string

const ContextConfig ContextKey = "config"
const ContextConverter ContextKey = "converter"
const ContextArgs ContextKey = "args"

func WrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ContextConfig, cfg)
}

func WrapConverter(ctx context.Context, converter *convert.Converter) context.Context {
	return context.WithValue(ctx, ContextConverter, converter)
}

func WrapArgs(ctx context.Context, args *Args) context.Context {
	return context.WithValue(ctx, ContextArgs, args)
}

func UnwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(ContextConfig).(*config.Config)
}

func UnwrapConverter(ctx context.Context) *convert.Converter {
	return ctx.Value(ContextConverter).(*convert.Converter)
}

func UnwrapArgs(ctx context.Context) *Args {
	return ctx.Value(ContextArgs).(*Args)
}

func CreateContext(args *Args, cfg *config.Config, converter *convert.Converter) context.Context {
	ctx := context.Background()
	ctx = WrapArgs(ctx, args)
	ctx = WrapConfig(ctx, cfg)
	ctx = WrapConverter(ctx, converter)
	return ctx
}
