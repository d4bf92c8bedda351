package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/model"
)

func TestApplication_CheckAcyclic_CleanGraph(t *testing.T) {
	app := model.NewApplication()
	require.NoError(t, app.AddTask(model.NewTask("t1")))
	require.NoError(t, app.AddTask(model.NewTask("t2")))
	require.NoError(t, app.AddTask(model.NewTask("t3")))
	require.NoError(t, app.AddDependency("d1", "t1", "t2", model.NewDependency("d1")))
	require.NoError(t, app.AddDependency("d2", "t2", "t3", model.NewDependency("d2")))

	ok, cyc, err := app.CheckAcyclic()
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, cyc)
}

func TestApplication_CheckAcyclic_DetectsCycle(t *testing.T) {
	app := model.NewApplication()
	require.NoError(t, app.AddTask(model.NewTask("t1")))
	require.NoError(t, app.AddTask(model.NewTask("t2")))
	require.NoError(t, app.AddDependency("d1", "t1", "t2", model.NewDependency("d1")))
	require.NoError(t, app.AddDependency("d2", "t2", "t1", model.NewDependency("d2")))

	ok, cyc, err := app.CheckAcyclic()
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, cyc)
}

func TestApplication_Functions_SplitsComponents(t *testing.T) {
	app := model.NewApplication()
	// Component 1: t1 -> c1 -> t2
	require.NoError(t, app.AddTask(model.NewTask("t1")))
	require.NoError(t, app.AddTask(model.NewCommunication("c1")))
	require.NoError(t, app.AddTask(model.NewTask("t2")))
	require.NoError(t, app.AddDependency("d1", "t1", "c1", model.NewDependency("d1")))
	require.NoError(t, app.AddDependency("d2", "c1", "t2", model.NewDependency("d2")))
	// Component 2: isolated t3
	require.NoError(t, app.AddTask(model.NewTask("t3")))

	functions := app.Functions()
	require.Len(t, functions, 2)
	require.Len(t, functions[0].Nodes, 3)
	require.Len(t, functions[0].Communications(), 1)
	require.Len(t, functions[0].Tasks(), 2)
	require.Len(t, functions[1].Nodes, 1)
}

func TestApplication_FilterProcessesAndCommunications(t *testing.T) {
	app := model.NewApplication()
	require.NoError(t, app.AddTask(model.NewTask("t1")))
	require.NoError(t, app.AddTask(model.NewCommunication("c1")))

	require.Equal(t, []string{"t1"}, app.FilterProcesses())
	require.Equal(t, []string{"c1"}, app.FilterCommunications())
}
