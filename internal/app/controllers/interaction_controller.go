package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/services"
	"github.com/ozan/alumnisphere/internal/middleware"
)

// InteractionController handles posts, comments and voting
type InteractionController struct {
	interactionService services.InteractionService
}

// NewInteractionController creates a new InteractionController
func NewInteractionController(interactionService services.InteractionService) *InteractionController {
	return &InteractionController{
		interactionService: interactionService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid id parameter"))
		return 0, false
	}
	return id, true
}

// CreatePost handles POST /interaction/post
func (c *InteractionController) CreatePost(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	interaction, err := c.interactionService.CreatePost(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InteractionResponse{
		Message:     "Interaction created successfully",
		Interaction: interaction,
	})
}

// CreateComment handles POST /interaction/comment
func (c *InteractionController) CreateComment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	interaction, err := c.interactionService.CreateComment(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InteractionResponse{
		Message:     "Interaction created successfully",
		Interaction: interaction,
	})
}

// PostsVisibleTo handles GET /interaction/post/for/:id. The id is the viewer
// whose membership set scopes the feed.
func (c *InteractionController) PostsVisibleTo(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	posts, err := c.interactionService.ListPostsVisibleTo(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// PostsByAuthor handles GET /interaction/post/by/:id. The caller may only
// read an author's posts when the two share at least one university.
func (c *InteractionController) PostsByAuthor(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
		return
	}

	authorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	posts, err := c.interactionService.ListPostsByAuthor(ctx, authorID, callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// CommentsFor handles GET /interaction/comment/for/:post_id
func (c *InteractionController) CommentsFor(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "post_id")
	if !ok {
		return
	}

	comments, err := c.interactionService.ListCommentsFor(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// Update handles PUT /interaction/:id
func (c *InteractionController) Update(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
		return
	}

	interactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInteractionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	interaction, err := c.interactionService.Update(ctx, interactionID, callerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InteractionResponse{
		Message:     "Interaction updated successfully",
		Interaction: interaction,
	})
}

// Delete handles DELETE /interaction/:id
func (c *InteractionController) Delete(ctx *gin.Context) {
	callerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
		return
	}

	interactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.interactionService.Delete(ctx, interactionID, callerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Interaction deleted successfully"))
}

// Upvote handles POST /interaction/post/upvote/:id
func (c *InteractionController) Upvote(ctx *gin.Context) {
	interactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.interactionService.Upvote(ctx, interactionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Upvoted successfully"))
}

// Downvote handles POST /interaction/post/downvote/:id
func (c *InteractionController) Downvote(ctx *gin.Context) {
	interactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.interactionService.Downvote(ctx, interactionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Downvoted successfully"))
}
