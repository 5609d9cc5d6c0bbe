package turingconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

const DefaultStoreKey = "appState"

type StoreSettings struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
	Key  string `json:"key"`
}

var (
	storeFlag     = cmds.Var[string]("-store")
	storePathFlag = cmds.Var[string]("-store-path")
)

func (Module) StoreSettings(
	loader configs.Loader,
) StoreSettings {
	settings := configs.First[StoreSettings](loader, "store")
	settings.Kind = vars.FirstNonZero(*storeFlag, settings.Kind)
	settings.Path = vars.FirstNonZero(*storePathFlag, settings.Path)
	settings.Key = vars.FirstNonZero(settings.Key, DefaultStoreKey)
	return settings
}

type LRSAgent struct {
	Name string `json:"name,omitempty"`
	Mbox string `json:"mbox,omitempty"`
}

type LRSSettings struct {
	Endpoint     string   `json:"endpoint"`
	Auth         string   `json:"auth"`
	ActivityID   string   `json:"activity_id"`
	Registration string   `json:"registration"`
	Agent        LRSAgent `json:"agent"`
}

func (Module) LRSSettings(
	loader configs.Loader,
) LRSSettings {
	return configs.First[LRSSettings](loader, "lrs")
}
