package fx

import (
	"github.com/orgball2608/socialgram-client/internal/store/auth"
	"github.com/orgball2608/socialgram-client/internal/store/message"
	"github.com/orgball2608/socialgram-client/internal/store/post"
	"github.com/orgball2608/socialgram-client/internal/store/story"
	"github.com/orgball2608/socialgram-client/internal/store/user"
	"go.uber.org/fx"
)

var Module = fx.Options(
	auth.Module,
	user.Module,
	post.Module,
	message.Module,
	story.Module,
)
