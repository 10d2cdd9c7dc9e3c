package server

import (
	"mentorly/internal/mapper"
	"mentorly/internal/models"
	"mentorly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAchievementPost handles POST /api/v1/achievement-posts
// @Summary Create an achievement post
// @Tags achievement-posts
// @Accept json
// @Produce json
// @Param request body models.AchievementPostRequest true "Post"
// @Success 201 {object} models.AchievementPostDto
// @Failure 400 {object} models.ErrorResponse
// @Router /achievement-posts [post]
func (s *Server) CreateAchievementPost(c *fiber.Ctx) error {
	var req models.AchievementPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.NewValidationError("Invalid request body"))
	}
	if err := mapper.ValidatePostRequest(&req); err != nil {
		return badRequest(c, err)
	}

	post := mapper.ToEntity(req)
	post.AuthorID = service.AnonymousUserID
	post.AuthorName = service.AnonymousUserName
	post.ProfileImageURL = service.AnonymousProfileImageURL

	saved, err := s.postService.Save(c.UserContext(), post)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mapper.ToDto(saved))
}

// GetAchievementPosts handles GET /api/v1/achievement-posts
// @Summary List all achievement posts, newest first
// @Tags achievement-posts
// @Produce json
// @Success 200 {array} models.AchievementPostDto
// @Router /achievement-posts [get]
func (s *Server) GetAchievementPosts(c *fiber.Ctx) error {
	posts, err := s.postService.FindAll(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDtos(posts))
}

// GetFeed handles GET /api/v1/achievement-posts/feed
// @Summary Feed of all posts
// @Tags achievement-posts
// @Produce json
// @Success 200 {array} models.AchievementPostDto
// @Router /achievement-posts/feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	return s.GetAchievementPosts(c)
}

// GetAchievementPost handles GET /api/v1/achievement-posts/:id
// @Summary Get an achievement post
// @Tags achievement-posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.AchievementPostDto
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id} [get]
func (s *Server) GetAchievementPost(c *fiber.Ctx) error {
	post, err := s.postService.FindByID(c.UserContext(), pathParam(c, "id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(post))
}

// UpdateAchievementPost handles PUT /api/v1/achievement-posts/:id
// @Summary Update an achievement post
// @Description Replaces skill, title and template; author, comments and likes are kept.
// @Tags achievement-posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body models.AchievementPostRequest true "Post"
// @Success 200 {object} models.AchievementPostDto
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id} [put]
func (s *Server) UpdateAchievementPost(c *fiber.Ctx) error {
	var req models.AchievementPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.NewValidationError("Invalid request body"))
	}
	if err := mapper.ValidatePostRequest(&req); err != nil {
		return badRequest(c, err)
	}

	ctx := c.UserContext()
	existing, err := s.postService.FindByID(ctx, pathParam(c, "id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	mapper.UpdateEntityFromRequest(req, existing)

	updated, err := s.postService.Update(ctx, existing)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(updated))
}

// DeleteAchievementPost handles DELETE /api/v1/achievement-posts/:id
// @Summary Delete an achievement post
// @Tags achievement-posts
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id} [delete]
func (s *Server) DeleteAchievementPost(c *fiber.Ctx) error {
	if err := s.postService.Delete(c.UserContext(), pathParam(c, "id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikeAchievementPost handles POST /api/v1/achievement-posts/:id/like
// @Summary Like a post
// @Tags likes
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.AchievementPostDto
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id}/like [post]
func (s *Server) LikeAchievementPost(c *fiber.Ctx) error {
	post, err := s.postService.AddLike(c.UserContext(), pathParam(c, "id"),
		service.AnonymousUserID, service.AnonymousUserName)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(post))
}

// UnlikeAchievementPost handles DELETE /api/v1/achievement-posts/:id/like
// @Summary Remove a like
// @Tags likes
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.AchievementPostDto
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id}/like [delete]
func (s *Server) UnlikeAchievementPost(c *fiber.Ctx) error {
	post, err := s.postService.RemoveLike(c.UserContext(), pathParam(c, "id"), service.AnonymousUserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(post))
}

// AddComment handles POST /api/v1/achievement-posts/:id/comments
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body models.CommentRequest true "Comment"
// @Success 201 {object} models.AchievementPostDto
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id}/comments [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.NewValidationError("Invalid request body"))
	}
	if err := mapper.ValidateCommentRequest(&req); err != nil {
		return badRequest(c, err)
	}

	comment := mapper.CommentToEntity(req)
	comment.AuthorID = service.AnonymousUserID
	comment.AuthorName = service.AnonymousUserName
	comment.ProfileImageURL = service.AnonymousProfileImageURL

	post, err := s.postService.AddComment(c.UserContext(), pathParam(c, "id"), comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mapper.ToDto(post))
}

// UpdateComment handles PUT /api/v1/achievement-posts/:id/comments/:commentId
// @Summary Edit a comment
// @Description An unknown comment id leaves the post unchanged.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Param request body models.CommentRequest true "Comment"
// @Success 200 {object} models.AchievementPostDto
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id}/comments/{commentId} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.NewValidationError("Invalid request body"))
	}
	if err := mapper.ValidateCommentRequest(&req); err != nil {
		return badRequest(c, err)
	}

	post, err := s.postService.UpdateComment(c.UserContext(), pathParam(c, "id"), pathParam(c, "commentId"), req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(post))
}

// DeleteComment handles DELETE /api/v1/achievement-posts/:id/comments/:commentId
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} models.AchievementPostDto
// @Failure 404 {object} models.ErrorResponse
// @Router /achievement-posts/{id}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	post, err := s.postService.DeleteComment(c.UserContext(), pathParam(c, "id"), pathParam(c, "commentId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDto(post))
}

// GetPostsByUser handles GET /api/v1/achievement-posts/user/:userId
// @Summary Posts authored by a user
// @Tags achievement-posts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.AchievementPostDto
// @Router /achievement-posts/user/{userId} [get]
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	return s.listByAuthor(c, pathParam(c, "userId"))
}

// GetMyPosts handles GET /api/v1/achievement-posts/me
// @Summary Posts authored by the current (anonymous) user
// @Tags achievement-posts
// @Produce json
// @Success 200 {array} models.AchievementPostDto
// @Router /achievement-posts/me [get]
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	return s.listByAuthor(c, service.AnonymousUserID)
}

// GetLikedPosts handles GET /api/v1/achievement-posts/liked
// @Summary Posts liked by the current (anonymous) user
// @Tags likes
// @Produce json
// @Success 200 {array} models.AchievementPostDto
// @Router /achievement-posts/liked [get]
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	posts, err := s.postService.FindLikedByUser(c.UserContext(), service.AnonymousUserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDtos(posts))
}

func (s *Server) listByAuthor(c *fiber.Ctx, userID string) error {
	posts, err := s.postService.FindByUserID(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapper.ToDtos(posts))
}
