package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/records"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Records  records.Module
	Debugs   debugs.Module
}
