package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) SearchPost(c *gin.Context) {
	var searchDTO dto.PostSearchDTO
	if err := bindQuery(c, &searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.postSvc.SearchPosts(c.Request.Context(), currentUserID(c), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), currentUserID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), currentUserID(c), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateMetrics 覆盖帖子指标
func (s *PostHandler) UpdateMetrics(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PostMetricsDTO
	if err = bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.UpdatePostMetrics(c.Request.Context(), currentUserID(c), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
