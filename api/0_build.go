package api

import (
	"context"

	"github.com/fulldump/box"

	"rosterdb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")

	v1.Resource("/students").
		WithActions(
			box.Get(listStudents),
			box.Post(createStudent),
			box.ActionPost(find),
			box.ActionPost(sortStudents),
			box.ActionPost(searchStudent),
			box.Action(stats),
		)

	v1.Resource("/students/{studentId}").
		WithActions(
			box.Get(getStudent),
			box.ActionPost(dropStudent),
			box.ActionPost(renameStudent),
			box.ActionPost(addGrade),
		)

	v1.Resource("/version").
		WithActions(
			box.Get(func(ctx context.Context) string {
				return version
			}),
		)

	b.WithInterceptors(injectServicer(s))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
