package tasktool

import (
	"context"
	"errors"

	"github.com/flexigpt/llmtools-go"

	nashmcp "github.com/nash-app/nash-mcp"
	"github.com/nash-app/nash-mcp/spec"
)

// Register registers the Nash tool set into an existing llmtools-go Registry.
// Every binding returns a report string rendered by the runtime; operational
// failures are folded into the report so callers always get text back.
func Register(r *llmtools.Registry, rt *nashmcp.Runtime) error {
	if r == nil {
		return errors.New("nil registry")
	}
	if rt == nil {
		return errors.New("nil runtime")
	}

	// "tasks.save" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.SaveTaskArgs, spec.ToolReport](
		r,
		TasksSaveTool(),
		func(ctx context.Context, args spec.SaveTaskArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.SaveTaskReport(ctx, args)}, nil
		},
	); err != nil {
		return err
	}

	// "tasks.list" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.EmptyArgs, spec.ToolReport](
		r,
		TasksListTool(),
		func(ctx context.Context, _ spec.EmptyArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.ListTasksReport(ctx)}, nil
		},
	); err != nil {
		return err
	}

	// "tasks.get" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.TaskNameArgs, spec.ToolReport](
		r,
		TasksGetTool(),
		func(ctx context.Context, args spec.TaskNameArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.GetTaskReport(ctx, args.Name)}, nil
		},
	); err != nil {
		return err
	}

	// "tasks.details" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.TaskNameArgs, spec.ToolReport](
		r,
		TasksDetailsTool(),
		func(ctx context.Context, args spec.TaskNameArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.TaskDetailsReport(ctx, args.Name)}, nil
		},
	); err != nil {
		return err
	}

	// "tasks.delete" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.TaskNameArgs, spec.ToolReport](
		r,
		TasksDeleteTool(),
		func(ctx context.Context, args spec.TaskNameArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.DeleteTaskReport(ctx, args.Name)}, nil
		},
	); err != nil {
		return err
	}

	// "tasks.run_script" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.ExecuteScriptArgs, spec.ToolReport](
		r,
		TasksRunScriptTool(),
		func(ctx context.Context, args spec.ExecuteScriptArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.ExecuteScriptReport(ctx, args)}, nil
		},
	); err != nil {
		return err
	}

	// "exec.command" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.CommandArgs, spec.ToolReport](
		r,
		ExecCommandTool(),
		func(ctx context.Context, args spec.CommandArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.CommandReport(ctx, args.Command)}, nil
		},
	); err != nil {
		return err
	}

	// "exec.python" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.PythonArgs, spec.ToolReport](
		r,
		ExecPythonTool(),
		func(ctx context.Context, args spec.PythonArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.PythonReport(ctx, args.Code)}, nil
		},
	); err != nil {
		return err
	}

	// "exec.packages" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.EmptyArgs, spec.ToolReport](
		r,
		ExecPackagesTool(),
		func(ctx context.Context, _ spec.EmptyArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.PackagesReport(ctx)}, nil
		},
	); err != nil {
		return err
	}

	// "web.fetch" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.FetchArgs, spec.ToolReport](
		r,
		WebFetchTool(),
		func(ctx context.Context, args spec.FetchArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.FetchReport(ctx, args.URL)}, nil
		},
	); err != nil {
		return err
	}

	// "secrets.list" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.EmptyArgs, spec.ToolReport](
		r,
		SecretsListTool(),
		func(ctx context.Context, _ spec.EmptyArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: rt.SecretsReport(ctx)}, nil
		},
	); err != nil {
		return err
	}

	// "help" -> typed -> text output (JSON).
	if err := llmtools.RegisterTypedAsTextTool[spec.EmptyArgs, spec.ToolReport](
		r,
		HelpTool(),
		func(_ context.Context, _ spec.EmptyArgs) (spec.ToolReport, error) {
			return spec.ToolReport{Report: HelpText}, nil
		},
	); err != nil {
		return err
	}

	return nil
}
