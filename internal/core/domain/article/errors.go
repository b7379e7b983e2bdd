package article

import "errors"

var ErrArticleDoesNotExist = errors.New("article does not exist")
