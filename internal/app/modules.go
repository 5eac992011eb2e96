package app

import (
	"github.com/vk/funcattr/internal/registry"
	"github.com/vk/funcattr/modules/banner"
	"github.com/vk/funcattr/modules/tags"
	"github.com/vk/funcattr/modules/tally"
	"github.com/vk/funcattr/modules/title"
)

// coreModules is the definitive list of all handler modules that are
// compiled into the funcattr binary.
var coreModules = []registry.Module{
	&title.Module{},
	&tally.Module{},
	&tags.Module{},
	&banner.Module{},
}
